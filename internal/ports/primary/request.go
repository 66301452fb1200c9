package primary

import "context"

// RequestService defines the primary port for maintenance request tracking.
type RequestService interface {
	// SubmitRequest files a request and marks the room with its category.
	// Fails with errs.ErrNotFound, errs.ErrInvalidSelection or
	// errs.ErrDuplicateRequest without changing any state.
	SubmitRequest(ctx context.Context, req SubmitRequestRequest) (*SubmitRequestResponse, error)

	// ListPending lists pending requests ordered by floor then room number.
	// Returns errs.ErrNoPendingRequests when nothing is pending.
	ListPending(ctx context.Context) (*PendingListing, error)

	// CountPending returns the number of pending requests.
	CountPending(ctx context.Context) (int, error)
}

// SubmitRequestRequest contains parameters for filing a request.
type SubmitRequestRequest struct {
	RoomNumber string
	Choice     int // 1-based issue category choice
}

// SubmitRequestResponse contains the result of filing a request.
type SubmitRequestResponse struct {
	Request *PendingRequest
	Room    *Room
}

// PendingRequest represents a pending request at the port boundary.
type PendingRequest struct {
	ID         int64
	RoomNumber string
	Issue      string
	CreatedAt  string
}

// PendingEntry pairs a request with the room it references.
// Room is nil and Floor is room.UnknownFloor when the room cannot be found.
type PendingEntry struct {
	Request *PendingRequest
	Room    *Room
	Floor   int
}

// PendingListing is the ordered list of pending requests.
type PendingListing struct {
	Entries []*PendingEntry
}
