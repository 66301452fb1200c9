package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/example/fixen/internal/adapters/sqlite"
	"github.com/example/fixen/internal/core/errs"
	"github.com/example/fixen/internal/ports/secondary"
)

var errDriver = errors.New("driver failure")

// setupMockDB returns a database whose queries are answered by sqlmock.
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		mockDB.Close()
	})
	return mockDB, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRoomRepository_List_QueryError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectQuery(`SELECT seq, number, type_label, issue, floor FROM rooms`).
		WithArgs(2).
		WillReturnError(errDriver)

	_, err := repo.List(context.Background(), secondary.RoomFilters{Floor: floorPtr(2)})
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_List_RowError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	rows := sqlmock.NewRows([]string{"seq", "number", "type_label", "issue", "floor"}).
		AddRow(1, "101", "Classroom", "No issue", 1).
		AddRow(2, "102", "Classroom", "No issue", 1).
		RowError(1, errDriver)
	mock.ExpectQuery(`SELECT seq, number, type_label, issue, floor FROM rooms`).
		WillReturnRows(rows)

	_, err := repo.List(context.Background(), secondary.RoomFilters{})
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected row error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_GetByNumber_QueryError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectQuery(`SELECT seq, number, type_label, issue, floor FROM rooms WHERE number = \?`).
		WithArgs("101").
		WillReturnError(errDriver)

	_, err := repo.GetByNumber(context.Background(), "101")
	if errors.Is(err, errs.ErrNotFound) {
		t.Fatal("driver failure must not be reported as not found")
	}
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_UpdateIssue_NoRowsAffected(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectExec(`UPDATE rooms SET issue = \?`).
		WithArgs("Cleaning", "999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateIssue(context.Background(), "999", "Cleaning")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_UpdateIssue_ExecError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectExec(`UPDATE rooms SET issue = \?`).
		WithArgs("Cleaning", "101").
		WillReturnError(errDriver)

	err := repo.UpdateIssue(context.Background(), "101", "Cleaning")
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_UpdateIssue_RowsAffectedError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectExec(`UPDATE rooms SET issue = \?`).
		WithArgs("Cleaning", "101").
		WillReturnResult(sqlmock.NewErrorResult(errDriver))

	err := repo.UpdateIssue(context.Background(), "101", "Cleaning")
	if errors.Is(err, errs.ErrNotFound) {
		t.Fatal("driver failure must not be reported as not found")
	}
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRoomRepository_Count_Error(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRoomRepository(mockDB)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rooms`).WillReturnError(errDriver)

	if _, err := repo.Count(context.Background()); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Create_ExecError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pending_requests`).
		WithArgs("101", "Cleaning").
		WillReturnError(errDriver)
	mock.ExpectRollback()

	record := &secondary.RequestRecord{RoomNumber: "101", Issue: "Cleaning"}
	if err := repo.Create(context.Background(), record); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	if record.ID != 0 {
		t.Errorf("expected ID to stay unset, got %d", record.ID)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Create_ReloadError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pending_requests`).
		WithArgs("101", "Cleaning").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT created_at FROM pending_requests WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(errDriver)
	mock.ExpectRollback()

	record := &secondary.RequestRecord{RoomNumber: "101", Issue: "Cleaning"}
	if err := repo.Create(context.Background(), record); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Create_CommitError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO pending_requests`).
		WithArgs("101", "Cleaning").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT created_at FROM pending_requests WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectCommit().WillReturnError(errDriver)

	record := &secondary.RequestRecord{RoomNumber: "101", Issue: "Cleaning"}
	if err := repo.Create(context.Background(), record); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	if record.ID != 0 {
		t.Errorf("expected ID to stay unset, got %d", record.ID)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Exists_Error(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pending_requests WHERE room_number = \?`).
		WithArgs("101", "Cleaning").
		WillReturnError(errDriver)

	exists, err := repo.Exists(context.Background(), "101", "Cleaning")
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	if exists {
		t.Error("expected exists to be false on error")
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_List_QueryError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectQuery(`SELECT id, room_number, issue, created_at FROM pending_requests`).
		WillReturnError(errDriver)

	if _, err := repo.List(context.Background()); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Delete_ExecError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectExec(`DELETE FROM pending_requests WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnError(errDriver)

	if err := repo.Delete(context.Background(), 3); !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRequestRepository_Delete_RowsAffectedError(t *testing.T) {
	mockDB, mock := setupMockDB(t)
	repo := sqlite.NewRequestRepository(mockDB)

	mock.ExpectExec(`DELETE FROM pending_requests WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewErrorResult(errDriver))

	err := repo.Delete(context.Background(), 3)
	if errors.Is(err, errs.ErrNotFound) {
		t.Fatal("driver failure must not be reported as not found")
	}
	if !errors.Is(err, errDriver) {
		t.Fatalf("expected driver error, got %v", err)
	}
	expectationsMet(t, mock)
}
