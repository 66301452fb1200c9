// Package room contains the pure business logic for the room registry:
// room types, issue categories, deduplication of the seed table and the
// display ordering shared by room and pending-request listings.
// This is part of the Functional Core - no I/O, only pure functions.
package room

import (
	"fmt"

	"github.com/example/fixen/internal/core/errs"
)

// Type is the closed set of room types. TypeUnrecognized holds legacy seed
// labels such as "Stock Room" that are not part of the enumeration.
type Type int

const (
	TypeUnrecognized Type = iota
	TypeClassroom
	TypeFaculty
	TypeLaboratoryRoom
	TypeComputerLaboratory
	TypeElectricalRoom
)

var typeLabels = map[Type]string{
	TypeClassroom:          "Classroom",
	TypeFaculty:            "Faculty",
	TypeLaboratoryRoom:     "Laboratory Room",
	TypeComputerLaboratory: "Computer Laboratory",
	TypeElectricalRoom:     "Electrical Room",
}

// Types returns the recognized room types in menu order.
func Types() []Type {
	return []Type{
		TypeClassroom,
		TypeFaculty,
		TypeLaboratoryRoom,
		TypeComputerLaboratory,
		TypeElectricalRoom,
	}
}

func (t Type) String() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "Unrecognized"
}

// ParseType maps a raw label to its Type. Labels outside the enumeration
// yield TypeUnrecognized.
func ParseType(label string) Type {
	for t, l := range typeLabels {
		if l == label {
			return t
		}
	}
	return TypeUnrecognized
}

// TypeFromChoice resolves a 1-based menu choice.
func TypeFromChoice(choice int) (Type, error) {
	types := Types()
	if choice < 1 || choice > len(types) {
		return TypeUnrecognized, fmt.Errorf("%w: room type %d (want 1-%d)", errs.ErrInvalidSelection, choice, len(types))
	}
	return types[choice-1], nil
}

// Category is one of the three maintenance categories a request can carry.
type Category int

const (
	CategoryCleaning Category = iota + 1
	CategoryRepair
	CategoryEquipment
)

var categoryNames = map[Category]string{
	CategoryCleaning:  "Cleaning Maintenance",
	CategoryRepair:    "Repair Maintenance",
	CategoryEquipment: "Equipment Maintenance",
}

// Categories returns the categories in menu order.
func Categories() []Category {
	return []Category{CategoryCleaning, CategoryRepair, CategoryEquipment}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory maps a category name to its Category.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// CategoryFromChoice resolves a 1-based menu choice.
func CategoryFromChoice(choice int) (Category, error) {
	cats := Categories()
	if choice < 1 || choice > len(cats) {
		return 0, fmt.Errorf("%w: issue type %d (want 1-%d)", errs.ErrInvalidSelection, choice, len(cats))
	}
	return cats[choice-1], nil
}
