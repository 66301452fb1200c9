package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/core/room"
	"github.com/example/fixen/internal/ports/primary"
)

// RoomAdapter is a thin adapter that translates room views to RoomService calls.
// It depends only on the RoomService interface, enabling easy testing with mocks.
type RoomAdapter struct {
	service primary.RoomService
	screen  *Screen
}

// NewRoomAdapter creates a new RoomAdapter with the given service.
func NewRoomAdapter(service primary.RoomService, screen *Screen) *RoomAdapter {
	return &RoomAdapter{
		service: service,
		screen:  screen,
	}
}

// ShowFloor prints the rooms of a floor in display order.
func (a *RoomAdapter) ShowFloor(ctx context.Context, floor int) ([]*primary.Room, error) {
	rooms, err := a.service.ListFloor(ctx, floor)
	if err != nil {
		return nil, fmt.Errorf("failed to list floor: %w", err)
	}
	if len(rooms) == 0 {
		a.screen.Box("No rooms on this floor.")
		return rooms, nil
	}
	a.showAll(rooms)
	return rooms, nil
}

// SearchByNumber prints the rooms whose number contains fragment.
func (a *RoomAdapter) SearchByNumber(ctx context.Context, fragment string) ([]*primary.Room, error) {
	rooms, err := a.service.SearchByNumber(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	if len(rooms) == 0 {
		a.screen.Box("No rooms found with that number.")
		return rooms, nil
	}
	a.showAll(rooms)
	return rooms, nil
}

// ShowTypes prints the selectable room types.
func (a *RoomAdapter) ShowTypes() {
	types := room.Types()
	entries := make([]string, len(types))
	for i, t := range types {
		entries[i] = fmt.Sprintf("%d. %s", i+1, t)
	}
	a.screen.Box("Available Room Types:", "", a.screen.Options(entries...))
}

// SearchByType prints the rooms of the type at the 1-based choice.
// An out-of-range choice is reported and returns errs.ErrInvalidSelection.
func (a *RoomAdapter) SearchByType(ctx context.Context, choice int) ([]*primary.Room, error) {
	roomType, err := room.TypeFromChoice(choice)
	if err != nil {
		a.screen.Box("Invalid choice.")
		return nil, err
	}

	rooms, err := a.service.FindAllByType(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	if len(rooms) == 0 {
		a.screen.Box("No rooms of this type.")
		return rooms, nil
	}
	a.showAll(rooms)
	return rooms, nil
}

// ShowIssues prints the selectable issue categories.
func (a *RoomAdapter) ShowIssues(title string) {
	cats := room.Categories()
	entries := make([]string, len(cats))
	for i, c := range cats {
		entries[i] = fmt.Sprintf("%d. %s", i+1, c)
	}
	a.screen.Box(title, "", a.screen.Options(entries...))
}

// SearchByIssue prints the rooms reporting the category at the 1-based choice.
// An out-of-range choice is reported and returns errs.ErrInvalidSelection.
func (a *RoomAdapter) SearchByIssue(ctx context.Context, choice int) ([]*primary.Room, error) {
	category, err := room.CategoryFromChoice(choice)
	if err != nil {
		a.screen.Box("Invalid choice.")
		return nil, err
	}

	rooms, err := a.service.FindAllByIssue(ctx, category)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSelection) {
			a.screen.Box("Invalid choice.")
			return nil, err
		}
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	if len(rooms) == 0 {
		a.screen.Box("No rooms with this issue.")
		return rooms, nil
	}
	a.showAll(rooms)
	return rooms, nil
}

func (a *RoomAdapter) showAll(rooms []*primary.Room) {
	for _, r := range rooms {
		a.show(r)
	}
}

func (a *RoomAdapter) show(r *primary.Room) {
	typeLabel := r.Type
	if room.ParseType(r.Type) == room.TypeUnrecognized {
		typeLabel = a.screen.Muted(r.Type)
	}
	a.screen.Box(
		"Room: "+r.Number,
		"Type: "+typeLabel,
		"Issue: "+a.screen.Issue(r.Issue),
	)
}
