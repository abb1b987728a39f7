package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewTaskRepository(d, logger.Nop())

	rows := sqlmock.NewRows(taskColumns).
		AddRow("t-1", "u-1", "Book venue", true, "2026-02-01", time.Now()).
		AddRow("t-2", "u-1", "Order cards", false, "", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM tasks WHERE user_id = \\$1").
		WithArgs("u-1").
		WillReturnRows(rows)

	tasks, err := repo.ListTasks(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].IsCompleted)
	assert.False(t, tasks[1].IsCompleted)
}

func TestListTasks_QueryError(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewTaskRepository(d, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM tasks").WillReturnError(errors.New("boom"))

	_, err := repo.ListTasks(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateTask(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewTaskRepository(d, logger.Nop())

	mock.ExpectExec("INSERT INTO tasks").
		WithArgs("t-1", "u-1", "Book venue", false, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTask(context.Background(), models.Task{ID: "t-1", UserID: "u-1", Title: "Book venue"})
	assert.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTaskCompletion(t *testing.T) {
	d, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewTaskRepository(d, logger.Nop())

	mock.ExpectExec("UPDATE tasks SET is_completed").
		WithArgs(true, "t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE tasks SET is_completed").
		WithArgs(true, "t-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetTaskCompletion(context.Background(), models.TaskCompletionUpdate{TaskID: "t-1", IsCompleted: true}))
	assert.ErrorIs(t,
		repo.SetTaskCompletion(context.Background(), models.TaskCompletionUpdate{TaskID: "t-404", IsCompleted: true}),
		ErrTaskNotFound,
	)
}
