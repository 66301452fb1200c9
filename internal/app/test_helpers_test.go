package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockRoomRepository implements secondary.RoomRepository for testing.
// Rooms are kept in insertion order, like the real repository.
type mockRoomRepository struct {
	rooms     []*secondary.RoomRecord
	createErr error
	listErr   error
	updateErr error
}

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{}
}

func (m *mockRoomRepository) Create(ctx context.Context, room *secondary.RoomRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, r := range m.rooms {
		if r.Number == room.Number && r.Floor == room.Floor {
			return fmt.Errorf("room %s on floor %d already exists", room.Number, room.Floor)
		}
	}
	room.Seq = int64(len(m.rooms) + 1)
	stored := *room
	m.rooms = append(m.rooms, &stored)
	return nil
}

func (m *mockRoomRepository) GetByNumber(ctx context.Context, number string) (*secondary.RoomRecord, error) {
	for _, r := range m.rooms {
		if r.Number == number {
			found := *r
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, number)
}

func (m *mockRoomRepository) List(ctx context.Context, filters secondary.RoomFilters) ([]*secondary.RoomRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.RoomRecord
	for _, r := range m.rooms {
		if filters.Floor != nil && r.Floor != *filters.Floor {
			continue
		}
		if filters.TypeLabel != "" && r.TypeLabel != filters.TypeLabel {
			continue
		}
		if filters.NumberContains != "" && !strings.Contains(r.Number, filters.NumberContains) {
			continue
		}
		found := *r
		result = append(result, &found)
	}
	return result, nil
}

func (m *mockRoomRepository) UpdateIssue(ctx context.Context, number, issue string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for _, r := range m.rooms {
		if r.Number == number {
			r.Issue = issue
			return nil
		}
	}
	return fmt.Errorf("%w: room %s", errs.ErrNotFound, number)
}

func (m *mockRoomRepository) Count(ctx context.Context) (int, error) {
	return len(m.rooms), nil
}

func (m *mockRoomRepository) add(number, typeLabel, issue string, floor int) {
	_ = m.Create(context.Background(), &secondary.RoomRecord{
		Number:    number,
		TypeLabel: typeLabel,
		Issue:     issue,
		Floor:     floor,
	})
}

// mockRequestRepository implements secondary.RequestRepository for testing.
type mockRequestRepository struct {
	requests  []*secondary.RequestRecord
	createErr error
	existsErr error
	listErr   error
	deleteErr error
	nextID    int64
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{}
}

func (m *mockRequestRepository) Create(ctx context.Context, request *secondary.RequestRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	request.ID = m.nextID
	request.CreatedAt = "2026-01-01T00:00:00Z"
	stored := *request
	m.requests = append(m.requests, &stored)
	return nil
}

func (m *mockRequestRepository) Exists(ctx context.Context, roomNumber, issue string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, r := range m.requests {
		if r.RoomNumber == roomNumber && r.Issue == issue {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRequestRepository) List(ctx context.Context) ([]*secondary.RequestRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.RequestRecord, len(m.requests))
	for i, r := range m.requests {
		found := *r
		result[i] = &found
	}
	return result, nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, r := range m.requests {
		if r.ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: request %d", errs.ErrNotFound, id)
}

func (m *mockRequestRepository) Count(ctx context.Context) (int, error) {
	return len(m.requests), nil
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	creates []string
	updates []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.creates = append(m.creates, entityType+":"+entityID)
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.updates = append(m.updates, fmt.Sprintf("%s:%s:%s:%s->%s", entityType, entityID, fieldName, oldValue, newValue))
	return m.err
}

// Ensure mocks implement the interfaces.
var (
	_ secondary.RoomRepository    = (*mockRoomRepository)(nil)
	_ secondary.RequestRepository = (*mockRequestRepository)(nil)
	_ secondary.LogWriter         = (*mockLogWriter)(nil)
)
