// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"

	"github.com/example/fixen/internal/core/room"
)

// RoomService defines the primary port for the room registry.
// Queries that match nothing return an empty slice and a nil error.
type RoomService interface {
	// Build loads the seed table, keeping the first occurrence of every
	// (number, floor) pair.
	Build(ctx context.Context, seed []room.Room) (*BuildResult, error)

	// FindByNumber retrieves the first room with exactly this number.
	FindByNumber(ctx context.Context, number string) (*Room, error)

	// FindAllByFloor retrieves the rooms of a floor in registry order.
	FindAllByFloor(ctx context.Context, floor int) ([]*Room, error)

	// ListFloor retrieves the rooms of a floor in display order.
	ListFloor(ctx context.Context, floor int) ([]*Room, error)

	// FindAllByType retrieves the rooms of the given type.
	FindAllByType(ctx context.Context, roomType room.Type) ([]*Room, error)

	// FindAllByIssue retrieves the rooms reporting the given category.
	FindAllByIssue(ctx context.Context, category room.Category) ([]*Room, error)

	// SearchByNumber retrieves the rooms whose number contains fragment.
	SearchByNumber(ctx context.Context, fragment string) ([]*Room, error)

	// SetIssue replaces the issue of a room with a single category.
	SetIssue(ctx context.Context, number string, category room.Category) error
}

// BuildResult reports how the seed table was loaded.
type BuildResult struct {
	Kept      int
	Discarded int
}

// Room represents a room at the port boundary.
type Room struct {
	Number string
	Type   string // display label, may be outside the recognized types
	Issue  string // display text, "No issue" when none
	Floor  int
}
