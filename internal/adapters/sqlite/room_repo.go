// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/ports/secondary"
)

// RoomRepository implements secondary.RoomRepository with SQLite.
type RoomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new SQLite room repository.
func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create persists a new room and assigns its sequence number.
func (r *RoomRepository) Create(ctx context.Context, room *secondary.RoomRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (number, type_label, issue, floor) VALUES (?, ?, ?, ?)",
		room.Number, room.TypeLabel, room.Issue, room.Floor,
	)
	if err != nil {
		return fmt.Errorf("failed to create room %s: %w", room.Number, err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read room sequence: %w", err)
	}
	room.Seq = seq

	return nil
}

// GetByNumber retrieves the first room with this number.
func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*secondary.RoomRecord, error) {
	record := &secondary.RoomRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT seq, number, type_label, issue, floor FROM rooms WHERE number = ? ORDER BY seq ASC LIMIT 1",
		number,
	).Scan(&record.Seq, &record.Number, &record.TypeLabel, &record.Issue, &record.Floor)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: room %s", errs.ErrNotFound, number)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return record, nil
}

// List retrieves rooms matching the filters in insertion order.
func (r *RoomRepository) List(ctx context.Context, filters secondary.RoomFilters) ([]*secondary.RoomRecord, error) {
	query := "SELECT seq, number, type_label, issue, floor FROM rooms WHERE 1=1"
	var args []any

	if filters.Floor != nil {
		query += " AND floor = ?"
		args = append(args, *filters.Floor)
	}
	if filters.TypeLabel != "" {
		query += " AND type_label = ?"
		args = append(args, filters.TypeLabel)
	}
	if filters.NumberContains != "" {
		// instr keeps the match case-sensitive and free of LIKE wildcards
		query += " AND instr(number, ?) > 0"
		args = append(args, filters.NumberContains)
	}

	query += " ORDER BY seq ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*secondary.RoomRecord
	for rows.Next() {
		record := &secondary.RoomRecord{}
		if err := rows.Scan(&record.Seq, &record.Number, &record.TypeLabel, &record.Issue, &record.Floor); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

// UpdateIssue overwrites the issue of the first room with this number.
func (r *RoomRepository) UpdateIssue(ctx context.Context, number, issue string) error {
	if strings.TrimSpace(issue) == "" {
		return fmt.Errorf("issue for room %s must not be empty", number)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET issue = ? WHERE seq = (SELECT MIN(seq) FROM rooms WHERE number = ?)",
		issue, number,
	)
	if err != nil {
		return fmt.Errorf("failed to update room issue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: room %s", errs.ErrNotFound, number)
	}

	return nil
}

// Count returns the number of stored rooms.
func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// Ensure RoomRepository implements the interface.
var _ secondary.RoomRepository = (*RoomRepository)(nil)
