// Package errs defines the recoverable failure kinds reported by the core.
// None of them is fatal: every failing operation leaves state unchanged.
package errs

// Error is a comparable failure kind. Wrap it with fmt.Errorf("%w") to add
// detail and match it with errors.Is.
type Error struct {
	Code    string
	Message string
}

func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

var (
	ErrNotFound = Error{
		Code:    "NOT_FOUND",
		Message: "no matching room",
	}

	ErrInvalidSelection = Error{
		Code:    "INVALID_SELECTION",
		Message: "choice out of range",
	}

	ErrDuplicateRequest = Error{
		Code:    "DUPLICATE_REQUEST",
		Message: "request already pending",
	}

	ErrNoPendingRequests = Error{
		Code:    "NO_PENDING_REQUESTS",
		Message: "no pending requests",
	}
)
