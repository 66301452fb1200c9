package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/ports/primary"
)

// RequestAdapter is a thin adapter that translates request views to RequestService calls.
type RequestAdapter struct {
	service primary.RequestService
	rooms   *RoomAdapter
	screen  *Screen
}

// NewRequestAdapter creates a new RequestAdapter. Room cards are drawn
// through rooms so both adapters share one look.
func NewRequestAdapter(service primary.RequestService, rooms *RoomAdapter, screen *Screen) *RequestAdapter {
	return &RequestAdapter{
		service: service,
		rooms:   rooms,
		screen:  screen,
	}
}

// CheckRoom reports whether a room with exactly this number exists,
// printing "Room not found." when it does not.
func (a *RequestAdapter) CheckRoom(ctx context.Context, roomNumber string) (bool, error) {
	_, err := a.rooms.service.FindByNumber(ctx, roomNumber)
	if errors.Is(err, errs.ErrNotFound) {
		a.screen.Box("Room not found.")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up room: %w", err)
	}
	return true, nil
}

// Submit files a request and prints the outcome. Rejections are reported
// on screen and returned so callers can tell them apart.
func (a *RequestAdapter) Submit(ctx context.Context, roomNumber string, choice int) (*primary.SubmitRequestResponse, error) {
	resp, err := a.service.SubmitRequest(ctx, primary.SubmitRequestRequest{
		RoomNumber: roomNumber,
		Choice:     choice,
	})
	switch {
	case err == nil:
		a.screen.Box("Request added.")
		return resp, nil
	case errors.Is(err, errs.ErrNotFound):
		a.screen.Box("Room not found.")
	case errors.Is(err, errs.ErrInvalidSelection):
		a.screen.Box("Invalid choice.")
	case errors.Is(err, errs.ErrDuplicateRequest):
		a.screen.Box("Already a pending request for this issue in this room.")
	default:
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}
	return nil, err
}

// ShowPending prints the pending requests ordered by floor then room number.
func (a *RequestAdapter) ShowPending(ctx context.Context) (*primary.PendingListing, error) {
	listing, err := a.service.ListPending(ctx)
	if errors.Is(err, errs.ErrNoPendingRequests) {
		a.screen.Box("No pending requests.")
		return &primary.PendingListing{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	a.screen.Box("Pending Requests:")
	for _, entry := range listing.Entries {
		if entry.Room != nil {
			a.rooms.show(entry.Room)
			continue
		}
		a.screen.Box(
			"Room: "+entry.Request.RoomNumber,
			"Type: "+a.screen.Muted("unknown room"),
			"Issue: "+a.screen.Issue(entry.Request.Issue),
		)
	}
	return listing, nil
}
