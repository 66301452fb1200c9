package room

// Room is a physical space known to the registry. Number, Type and Floor are
// fixed once the registry is built; only Issue changes afterwards.
type Room struct {
	Number    string
	Type      Type
	TypeLabel string // raw label, kept for display of unrecognized types
	Issue     Issue
	Floor     int
}

// New builds a Room from raw seed values.
func New(number, typeLabel, issue string, floor int) Room {
	return Room{
		Number:    number,
		Type:      ParseType(typeLabel),
		TypeLabel: typeLabel,
		Issue:     ParseIssue(issue),
		Floor:     floor,
	}
}

// DisplayType returns the label shown to users.
func (r Room) DisplayType() string {
	if r.TypeLabel != "" {
		return r.TypeLabel
	}
	return r.Type.String()
}

// Key identifies a room within the registry.
type Key struct {
	Number string
	Floor  int
}

// Key returns the (number, floor) identity of the room.
func (r Room) Key() Key {
	return Key{Number: r.Number, Floor: r.Floor}
}

// Dedup keeps the first occurrence of every (number, floor) key in input
// order and returns the survivors plus the discarded later duplicates.
func Dedup(raw []Room) (kept, discarded []Room) {
	seen := make(map[Key]struct{}, len(raw))
	for _, r := range raw {
		if _, ok := seen[r.Key()]; ok {
			discarded = append(discarded, r)
			continue
		}
		seen[r.Key()] = struct{}{}
		kept = append(kept, r)
	}
	return kept, discarded
}
