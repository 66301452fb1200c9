// Package zaplog implements the audit log port on top of zap.
package zaplog

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/fixen/internal/ctxutil"
	"github.com/example/fixen/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter by emitting one structured
// info entry per audited change.
type LogWriterAdapter struct {
	logger *zap.Logger
}

// NewLogWriterAdapter creates a new LogWriterAdapter. A nil logger discards entries.
func NewLogWriterAdapter(logger *zap.Logger) *LogWriterAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogWriterAdapter{logger: logger.Named("audit")}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	w.write(ctx, entityType, entityID, "create")
	return nil
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	w.write(ctx, entityType, entityID, "update",
		zap.String("field", fieldName),
		zap.String("old_value", oldValue),
		zap.String("new_value", newValue),
	)
	return nil
}

func (w *LogWriterAdapter) write(ctx context.Context, entityType, entityID, action string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("operator", ctxutil.OperatorFromContext(ctx)),
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
		zap.String("action", action),
	}
	w.logger.Info("audit", append(base, fields...)...)
}

// Ensure LogWriterAdapter implements the interface.
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
