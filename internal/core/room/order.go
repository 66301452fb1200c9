package room

import (
	"slices"
	"strings"
)

// UnknownFloor is the floor bucket for pending requests whose room cannot be
// resolved. It sorts after every real floor.
const UnknownFloor = 99

var priorityPrefixes = []string{"CLR", "ECE"}

// IsNumeric reports whether id is non-empty and made only of ASCII digits.
func IsNumeric(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

func hasPriorityPrefix(id string) bool {
	for _, p := range priorityPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// Compare orders room numbers for display and returns -1, 0 or +1.
// Rules, highest precedence first:
//   - numeric numbers before non-numeric ones
//   - numeric numbers by integer value
//   - CLR/ECE prefixed numbers before other non-numeric ones
//   - plain string order
//
// Only identical strings compare equal.
func Compare(a, b string) int {
	aNum, bNum := IsNumeric(a), IsNumeric(b)
	switch {
	case aNum && !bNum:
		return -1
	case !aNum && bNum:
		return 1
	case aNum && bNum:
		if c := compareDigits(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	aPri, bPri := hasPriorityPrefix(a), hasPriorityPrefix(b)
	switch {
	case aPri && !bPri:
		return -1
	case !aPri && bPri:
		return 1
	}
	return strings.Compare(a, b)
}

// compareDigits compares two decimal strings by value without parsing, so
// arbitrarily long numbers cannot overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// ComparePending orders pending entries by floor, then by room number.
func ComparePending(floorA int, numberA string, floorB int, numberB string) int {
	if floorA != floorB {
		if floorA < floorB {
			return -1
		}
		return 1
	}
	return Compare(numberA, numberB)
}

// SortByNumber sorts items in place by Compare on the room number that
// number extracts.
func SortByNumber[T any](items []T, number func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return Compare(number(a), number(b))
	})
}
