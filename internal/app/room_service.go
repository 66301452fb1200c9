package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/core/room"
	"github.com/example/fixen/internal/ports/primary"
	"github.com/example/fixen/internal/ports/secondary"
)

// RoomServiceImpl implements the RoomService interface (the room registry).
type RoomServiceImpl struct {
	roomRepo  secondary.RoomRepository
	logWriter secondary.LogWriter
	logger    *zap.Logger
}

// NewRoomService creates a new RoomService with injected dependencies.
func NewRoomService(roomRepo secondary.RoomRepository, logWriter secondary.LogWriter, logger *zap.Logger) *RoomServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomServiceImpl{
		roomRepo:  roomRepo,
		logWriter: logWriter,
		logger:    logger.Named("registry"),
	}
}

// Build loads the seed table into an empty registry.
func (s *RoomServiceImpl) Build(ctx context.Context, seed []room.Room) (*primary.BuildResult, error) {
	existing, err := s.roomRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("registry already holds %d rooms", existing)
	}

	kept, discarded := room.Dedup(seed)
	for _, r := range discarded {
		s.logger.Debug("discarding duplicate seed room",
			zap.String("number", r.Number),
			zap.Int("floor", r.Floor),
			zap.String("type", r.DisplayType()),
			zap.String("issue", r.Issue.String()),
		)
	}

	for _, r := range kept {
		record := &secondary.RoomRecord{
			Number:    r.Number,
			TypeLabel: r.DisplayType(),
			Issue:     r.Issue.String(),
			Floor:     r.Floor,
		}
		if err := s.roomRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to build registry: %w", err)
		}
		if r.Type == room.TypeUnrecognized {
			s.logger.Info("room type outside the recognized list",
				zap.String("number", r.Number),
				zap.String("type", r.TypeLabel),
			)
		}
	}

	s.logger.Info("registry built",
		zap.Int("kept", len(kept)),
		zap.Int("discarded", len(discarded)),
	)

	return &primary.BuildResult{
		Kept:      len(kept),
		Discarded: len(discarded),
	}, nil
}

// FindByNumber retrieves the first room with exactly this number.
func (s *RoomServiceImpl) FindByNumber(ctx context.Context, number string) (*primary.Room, error) {
	record, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.recordToRoom(record), nil
}

// FindAllByFloor retrieves the rooms of a floor in registry order.
func (s *RoomServiceImpl) FindAllByFloor(ctx context.Context, floor int) ([]*primary.Room, error) {
	return s.list(ctx, secondary.RoomFilters{Floor: &floor})
}

// ListFloor retrieves the rooms of a floor in display order.
func (s *RoomServiceImpl) ListFloor(ctx context.Context, floor int) ([]*primary.Room, error) {
	rooms, err := s.FindAllByFloor(ctx, floor)
	if err != nil {
		return nil, err
	}

	room.SortByNumber(rooms, func(r *primary.Room) string { return r.Number })
	return rooms, nil
}

// FindAllByType retrieves the rooms of the given type. Rooms with labels
// outside the recognized types never match.
func (s *RoomServiceImpl) FindAllByType(ctx context.Context, roomType room.Type) ([]*primary.Room, error) {
	if roomType == room.TypeUnrecognized {
		return []*primary.Room{}, nil
	}
	return s.list(ctx, secondary.RoomFilters{TypeLabel: roomType.String()})
}

// FindAllByIssue retrieves the rooms reporting the given category.
func (s *RoomServiceImpl) FindAllByIssue(ctx context.Context, category room.Category) ([]*primary.Room, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown issue category %d", errs.ErrInvalidSelection, int(category))
	}

	all, err := s.list(ctx, secondary.RoomFilters{})
	if err != nil {
		return nil, err
	}

	matches := []*primary.Room{}
	for _, r := range all {
		if room.ParseIssue(r.Issue).Has(category) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// SearchByNumber retrieves the rooms whose number contains fragment.
func (s *RoomServiceImpl) SearchByNumber(ctx context.Context, fragment string) ([]*primary.Room, error) {
	if fragment == "" {
		return s.list(ctx, secondary.RoomFilters{})
	}
	return s.list(ctx, secondary.RoomFilters{NumberContains: fragment})
}

// SetIssue replaces the issue of a room with a single category.
// Earlier issue text, including multi-issue entries, is discarded.
func (s *RoomServiceImpl) SetIssue(ctx context.Context, number string, category room.Category) error {
	if !category.Valid() {
		return fmt.Errorf("%w: unknown issue category %d", errs.ErrInvalidSelection, int(category))
	}

	current, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}

	issue := room.IssueOf(category).String()
	if err := s.roomRepo.UpdateIssue(ctx, number, issue); err != nil {
		return fmt.Errorf("failed to set issue: %w", err)
	}

	if err := s.logWriter.LogUpdate(ctx, "room", number, "issue", current.Issue, issue); err != nil {
		s.logger.Warn("audit log failed", zap.String("room", number), zap.Error(err))
	}

	return nil
}

// Helper methods

func (s *RoomServiceImpl) list(ctx context.Context, filters secondary.RoomFilters) ([]*primary.Room, error) {
	records, err := s.roomRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]*primary.Room, len(records))
	for i, r := range records {
		rooms[i] = s.recordToRoom(r)
	}
	return rooms, nil
}

func (s *RoomServiceImpl) recordToRoom(r *secondary.RoomRecord) *primary.Room {
	return &primary.Room{
		Number: r.Number,
		Type:   r.TypeLabel,
		Issue:  r.Issue,
		Floor:  r.Floor,
	}
}

// isNotFound reports whether err is the registry's not-found kind.
func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}

// Ensure RoomServiceImpl implements the interface.
var _ primary.RoomService = (*RoomServiceImpl)(nil)
