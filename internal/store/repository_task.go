package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/jackc/pgerrcode"
)

type taskRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *taskRepository) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tasks []models.Task
	err = r.retryRead(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		tasks = make([]models.Task, 0, 32)
		for rows.Next() {
			var item models.Task
			if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.IsCompleted, &item.DueDate, &item.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			tasks = append(tasks, item)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Str("user_id", userID).Msg("failed to list tasks")
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTaskQuery(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Str("user_id", task.UserID).Msg("failed to insert task")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUnknownUser
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *taskRepository) SetTaskCompletion(ctx context.Context, update models.TaskCompletionUpdate) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateTaskCompletion, update.IsCompleted, update.TaskID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.SetTaskCompletion").Str("task_id", update.TaskID).Msg("failed to update task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrTaskNotFound)
}

// expectAffected turns a zero-row DML result into notFound.
func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
