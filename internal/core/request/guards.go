// Package request contains the pure business logic for maintenance requests.
// Guards are pure functions that evaluate preconditions without side effects.
package request

import (
	"fmt"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/core/room"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    error // errs kind when not allowed
	Reason  string
}

// Error converts the guard result to an error if not allowed.
// The returned error matches Kind with errors.Is.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// SubmitRequestContext provides context for request submission guards.
type SubmitRequestContext struct {
	RoomNumber       string
	RoomExists       bool
	Choice           int // 1-based menu choice of the issue category
	DuplicatePending bool
}

// CanSubmitRequest evaluates whether a maintenance request can be filed.
// Rules, in order:
// - Room must exist
// - Choice must select one of the issue categories
// - No identical (room, category) request may already be pending
func CanSubmitRequest(ctx SubmitRequestContext) GuardResult {
	if !ctx.RoomExists {
		return GuardResult{
			Kind:   errs.ErrNotFound,
			Reason: fmt.Sprintf("room %s not found", ctx.RoomNumber),
		}
	}

	category, err := room.CategoryFromChoice(ctx.Choice)
	if err != nil {
		return GuardResult{
			Kind:   errs.ErrInvalidSelection,
			Reason: fmt.Sprintf("issue choice %d is not between 1 and %d", ctx.Choice, len(room.Categories())),
		}
	}

	if ctx.DuplicatePending {
		return GuardResult{
			Kind:   errs.ErrDuplicateRequest,
			Reason: fmt.Sprintf("room %s already has a pending %s request", ctx.RoomNumber, category),
		}
	}

	return GuardResult{Allowed: true}
}
