package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/core/request"
	"github.com/example/fixen/internal/core/room"
	"github.com/example/fixen/internal/ports/primary"
	"github.com/example/fixen/internal/ports/secondary"
)

// RequestServiceImpl implements the RequestService interface.
type RequestServiceImpl struct {
	requestRepo secondary.RequestRepository
	rooms       primary.RoomService
	logWriter   secondary.LogWriter
	logger      *zap.Logger
}

// NewRequestService creates a new RequestService with injected dependencies.
func NewRequestService(requestRepo secondary.RequestRepository, rooms primary.RoomService, logWriter secondary.LogWriter, logger *zap.Logger) *RequestServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		rooms:       rooms,
		logWriter:   logWriter,
		logger:      logger.Named("tracker"),
	}
}

// SubmitRequest files a request and marks the room with its category.
// When the room cannot be marked the stored request is withdrawn, so a
// failed submission leaves both the tracker and the registry unchanged.
func (s *RequestServiceImpl) SubmitRequest(ctx context.Context, req primary.SubmitRequestRequest) (*primary.SubmitRequestResponse, error) {
	guardCtx := request.SubmitRequestContext{
		RoomNumber: req.RoomNumber,
		RoomExists: true,
		Choice:     req.Choice,
	}

	if _, err := s.rooms.FindByNumber(ctx, req.RoomNumber); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to look up room: %w", err)
		}
		guardCtx.RoomExists = false
	}

	category, choiceErr := room.CategoryFromChoice(req.Choice)
	if guardCtx.RoomExists && choiceErr == nil {
		exists, err := s.requestRepo.Exists(ctx, req.RoomNumber, category.String())
		if err != nil {
			return nil, fmt.Errorf("failed to check pending requests: %w", err)
		}
		guardCtx.DuplicatePending = exists
	}

	if result := request.CanSubmitRequest(guardCtx); !result.Allowed {
		s.logger.Debug("request rejected",
			zap.String("room", req.RoomNumber),
			zap.Int("choice", req.Choice),
			zap.String("reason", result.Reason),
		)
		return nil, result.Error()
	}

	record := &secondary.RequestRecord{
		RoomNumber: req.RoomNumber,
		Issue:      category.String(),
	}
	if err := s.requestRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := s.rooms.SetIssue(ctx, req.RoomNumber, category); err != nil {
		// the room was not marked, so the request must not stay pending
		if delErr := s.requestRepo.Delete(ctx, record.ID); delErr != nil {
			s.logger.Error("failed to withdraw request",
				zap.Int64("request", record.ID),
				zap.Error(delErr),
			)
			return nil, errors.Join(fmt.Errorf("failed to mark room: %w", err), delErr)
		}
		return nil, fmt.Errorf("failed to mark room: %w", err)
	}

	if err := s.logWriter.LogCreate(ctx, "request", strconv.FormatInt(record.ID, 10)); err != nil {
		s.logger.Warn("audit log failed", zap.Int64("request", record.ID), zap.Error(err))
	}

	updated, err := s.rooms.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to reload room: %w", err)
	}

	s.logger.Info("request filed",
		zap.String("room", req.RoomNumber),
		zap.String("issue", record.Issue),
	)

	return &primary.SubmitRequestResponse{
		Request: s.recordToRequest(record),
		Room:    updated,
	}, nil
}

// ListPending lists pending requests ordered by floor then room number.
// Requests whose room is gone sort last under room.UnknownFloor.
func (s *RequestServiceImpl) ListPending(ctx context.Context) (*primary.PendingListing, error) {
	records, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	if len(records) == 0 {
		return nil, errs.ErrNoPendingRequests
	}

	entries := make([]*primary.PendingEntry, 0, len(records))
	for _, r := range records {
		entry := &primary.PendingEntry{
			Request: s.recordToRequest(r),
			Floor:   room.UnknownFloor,
		}
		found, err := s.rooms.FindByNumber(ctx, r.RoomNumber)
		switch {
		case err == nil:
			entry.Room = found
			entry.Floor = found.Floor
		case isNotFound(err):
			s.logger.Warn("pending request references unknown room", zap.String("room", r.RoomNumber))
		default:
			return nil, fmt.Errorf("failed to resolve room %s: %w", r.RoomNumber, err)
		}
		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b *primary.PendingEntry) int {
		return room.ComparePending(a.Floor, a.Request.RoomNumber, b.Floor, b.Request.RoomNumber)
	})

	return &primary.PendingListing{Entries: entries}, nil
}

// CountPending returns the number of pending requests.
func (s *RequestServiceImpl) CountPending(ctx context.Context) (int, error) {
	return s.requestRepo.Count(ctx)
}

// Helper methods

func (s *RequestServiceImpl) recordToRequest(r *secondary.RequestRecord) *primary.PendingRequest {
	return &primary.PendingRequest{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Issue:      r.Issue,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure RequestServiceImpl implements the interface.
var _ primary.RequestService = (*RequestServiceImpl)(nil)
