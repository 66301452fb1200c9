package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/core/room"
	"github.com/example/fixen/internal/ports/primary"
)

// mockRoomService implements primary.RoomService over a fixed room list.
type mockRoomService struct {
	rooms []*primary.Room
}

func newMockRoomService() *mockRoomService {
	return &mockRoomService{rooms: []*primary.Room{
		{Number: "CLR1", Type: "Computer Laboratory", Issue: "Equipment Maintenance, Cleaning Maintenance", Floor: 2},
		{Number: "201", Type: "Stock Room", Issue: "Equipment Maintenance", Floor: 2},
		{Number: "101", Type: "Classroom", Issue: "Cleaning Maintenance", Floor: 1},
		{Number: "102", Type: "Classroom", Issue: "No issue", Floor: 1},
	}}
}

func (m *mockRoomService) Build(ctx context.Context, seed []room.Room) (*primary.BuildResult, error) {
	return &primary.BuildResult{}, nil
}

func (m *mockRoomService) FindByNumber(ctx context.Context, number string) (*primary.Room, error) {
	for _, r := range m.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, number)
}

func (m *mockRoomService) FindAllByFloor(ctx context.Context, floor int) ([]*primary.Room, error) {
	result := []*primary.Room{}
	for _, r := range m.rooms {
		if r.Floor == floor {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomService) ListFloor(ctx context.Context, floor int) ([]*primary.Room, error) {
	result, _ := m.FindAllByFloor(ctx, floor)
	room.SortByNumber(result, func(r *primary.Room) string { return r.Number })
	return result, nil
}

func (m *mockRoomService) FindAllByType(ctx context.Context, roomType room.Type) ([]*primary.Room, error) {
	result := []*primary.Room{}
	for _, r := range m.rooms {
		if r.Type == roomType.String() {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomService) FindAllByIssue(ctx context.Context, category room.Category) ([]*primary.Room, error) {
	result := []*primary.Room{}
	for _, r := range m.rooms {
		if room.ParseIssue(r.Issue).Has(category) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomService) SearchByNumber(ctx context.Context, fragment string) ([]*primary.Room, error) {
	result := []*primary.Room{}
	for _, r := range m.rooms {
		if strings.Contains(r.Number, fragment) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRoomService) SetIssue(ctx context.Context, number string, category room.Category) error {
	r, err := m.FindByNumber(ctx, number)
	if err != nil {
		return err
	}
	r.Issue = category.String()
	return nil
}

// mockRequestService implements primary.RequestService for testing.
type mockRequestService struct {
	submitFn func(ctx context.Context, req primary.SubmitRequestRequest) (*primary.SubmitRequestResponse, error)
	listing  *primary.PendingListing

	// Track calls for verification
	submitted []primary.SubmitRequestRequest
}

func (m *mockRequestService) SubmitRequest(ctx context.Context, req primary.SubmitRequestRequest) (*primary.SubmitRequestResponse, error) {
	m.submitted = append(m.submitted, req)
	if m.submitFn != nil {
		return m.submitFn(ctx, req)
	}
	return &primary.SubmitRequestResponse{
		Request: &primary.PendingRequest{ID: 1, RoomNumber: req.RoomNumber},
	}, nil
}

func (m *mockRequestService) ListPending(ctx context.Context) (*primary.PendingListing, error) {
	if m.listing == nil || len(m.listing.Entries) == 0 {
		return nil, errs.ErrNoPendingRequests
	}
	return m.listing, nil
}

func (m *mockRequestService) CountPending(ctx context.Context) (int, error) {
	if m.listing == nil {
		return 0, nil
	}
	return len(m.listing.Entries), nil
}

var (
	_ primary.RoomService    = (*mockRoomService)(nil)
	_ primary.RequestService = (*mockRequestService)(nil)
)
