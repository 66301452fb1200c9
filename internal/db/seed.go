package db

import "github.com/example/fixen/internal/core/room"

// seedRow is one raw line of the facility survey.
type seedRow struct {
	number, typeLabel, issue string
	floor                    int
}

// seedRows is the facility survey, oldest entries first. It still contains
// the duplicates and off-list room types of the source survey; the registry
// build removes the duplicates.
var seedRows = []seedRow{
	// First survey
	{"101", "Classroom", "Cleaning Maintenance", 1},
	{"102", "Classroom", "No issue", 1},
	{"CPE Faculty", "Faculty", "Cleaning Maintenance", 1},
	{"302", "Classroom", "No issue", 3},
	{"201", "Stock Room", "Equipment Maintenance", 2},
	{"302A", "Classroom", "Repair Maintenance", 3},
	{"CLR1", "Computer Laboratory", "Equipment Maintenance, Cleaning Maintenance", 2},
	{"ECE1", "Electrical Room", "Equipment Issue", 2},
	{"102A", "Laboratory Room", "Cleaning Maintenance", 1},
	{"419", "Classroom", "No issue", 4},
	{"CLR4", "Computer Laboratory", "Equipment Maintenance", 2},
	{"CLR2", "Computer Laboratory", "Equipment Maintenance", 2},
	{"EE Faculty", "Faculty", "Cleaning Maintenance", 1},
	{"317", "Classroom", "No issue", 3},
	{"421", "Classroom", "Cleaning Maintenance, Equipment Maintenance", 4},
	{"117", "Laboratory Room", "Repair Maintenance", 1},
	{"CE Faculty", "Faculty", "Repair Maintenance", 1},
	{"402", "Classroom", "Repair Maintenance", 4},

	// Second floor walk-through
	{"201", "Classroom", "No Issue", 2},
	{"205", "Classroom", "No Issue", 2},
	{"219", "Classroom", "Cleaning Maintenance", 2},
	{"Net Lab", "Computer Laboratory", "Cleaning Maintenance", 2},
	{"EPE4", "Electrical Laboratory", "No Issue", 2},
	{"206", "Classroom", "Cleaning Maintenance", 2},
	{"EPE3", "Electrical Room", "Cleaning Maintenance", 2},
	{"EPE2", "Electrical Room", "Cleaning Maintenance", 2},
	{"CLR8", "Computer Laboratory", "Cleaning Maintenance", 2},
	{"EPE1", "Computer Laboratory", "No Issue", 2},
	{"CLR7", "Computer Laboratory", "Cleaning Maintenance", 2},
	{"CLR6", "Computer Laboratory", "No Issue", 2},
	{"CLR5", "Computer Laboratory", "No Issue", 2},
	{"ECE4", "Electrical Room", "Cleaning Maintenance", 2},
	{"ECE3", "Electrical Room", "Cleaning Maintenance", 2},
	{"ECE2", "Electrical Room", "Cleaning Maintenance", 2},
	{"CLR3", "Computer Laboratory", "Cleaning Maintenance", 2},
	{"CLR2", "Computer Laboratory", "No Issue", 2},
	{"ECE1", "Electrical Room", "Cleaning Maintenance", 2},
	{"Open Laboratory Room", "Computer Laboratory", "Equipment Maintenance", 2},
	{"215", "Classroom", "Cleaning Maintenance", 2},
	{"217", "Classroom", "No Issue", 2},
}

// SeedRooms returns a fresh copy of the raw seed table, duplicates included.
func SeedRooms() []room.Room {
	rooms := make([]room.Room, len(seedRows))
	for i, r := range seedRows {
		rooms[i] = room.New(r.number, r.typeLabel, r.issue, r.floor)
	}
	return rooms
}
