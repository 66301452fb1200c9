package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/ports/secondary"
)

// RequestRepository implements secondary.RequestRepository with SQLite.
type RequestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new SQLite request repository.
func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create persists a new request and fills in its ID and creation time.
// Nothing is stored unless both are read back.
func (r *RequestRepository) Create(ctx context.Context, request *secondary.RequestRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO pending_requests (room_number, issue) VALUES (?, ?)",
		request.RoomNumber, request.Issue,
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read request ID: %w", err)
	}

	var createdAt time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT created_at FROM pending_requests WHERE id = ?", id,
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to fetch created request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit request: %w", err)
	}

	request.ID = id
	request.CreatedAt = createdAt.Format(time.RFC3339)

	return nil
}

// Exists checks whether a request for this room and issue is stored.
func (r *RequestRepository) Exists(ctx context.Context, roomNumber, issue string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pending_requests WHERE room_number = ? AND issue = ?",
		roomNumber, issue,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check request: %w", err)
	}
	return count > 0, nil
}

// List retrieves all requests in creation order.
func (r *RequestRepository) List(ctx context.Context) ([]*secondary.RequestRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, room_number, issue, created_at FROM pending_requests ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	var requests []*secondary.RequestRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.RequestRecord{}
		if err := rows.Scan(&record.ID, &record.RoomNumber, &record.Issue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		requests = append(requests, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return requests, nil
}

// Delete removes a request by ID.
func (r *RequestRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pending_requests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: request %d", errs.ErrNotFound, id)
	}

	return nil
}

// Count returns the number of stored requests.
func (r *RequestRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pending_requests").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

// Ensure RequestRepository implements the interface.
var _ secondary.RequestRepository = (*RequestRepository)(nil)
