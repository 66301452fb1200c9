// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// RoomRepository defines the secondary port for room storage.
// Rooms are kept in insertion order; every listing follows that order.
type RoomRepository interface {
	// Create stores a new room. The (number, floor) pair must be unique.
	Create(ctx context.Context, room *RoomRecord) error

	// GetByNumber retrieves the first stored room with this number.
	// Returns an error matching errs.ErrNotFound when there is none.
	GetByNumber(ctx context.Context, number string) (*RoomRecord, error)

	// List retrieves rooms matching the given filters.
	List(ctx context.Context, filters RoomFilters) ([]*RoomRecord, error)

	// UpdateIssue overwrites the issue text of the first room with this number.
	UpdateIssue(ctx context.Context, number, issue string) error

	// Count returns the number of stored rooms.
	Count(ctx context.Context) (int, error)
}

// RoomRecord represents a room as stored in persistence.
type RoomRecord struct {
	Seq       int64 // insertion order, assigned by the repository
	Number    string
	TypeLabel string
	Issue     string // display text of the issue
	Floor     int
}

// RoomFilters contains filter options for querying rooms.
// A nil Floor and empty strings mean no filtering.
type RoomFilters struct {
	Floor          *int
	TypeLabel      string
	NumberContains string
}

// RequestRepository defines the secondary port for pending request storage.
type RequestRepository interface {
	// Create stores a new request and sets its ID and CreatedAt.
	Create(ctx context.Context, request *RequestRecord) error

	// Exists checks whether a request for this room and issue is stored.
	Exists(ctx context.Context, roomNumber, issue string) (bool, error)

	// List retrieves all requests in creation order.
	List(ctx context.Context) ([]*RequestRecord, error)

	// Delete removes a stored request. Returns an error matching
	// errs.ErrNotFound when no request has this ID.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored requests.
	Count(ctx context.Context) (int, error)
}

// RequestRecord represents a pending request as stored in persistence.
type RequestRecord struct {
	ID         int64
	RoomNumber string
	Issue      string
	CreatedAt  string
}
