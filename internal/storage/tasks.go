package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Remphph/Track-bot/internal/models"
)

const taskColumns = `task_id, driver_id, task_type, status, manager_id, bol_number, trailer_number, created_at, updated_at`

// TaskRepo persists tasks and performs the lifecycle transitions.
type TaskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo wraps the shared connection pool.
func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Insert creates a task in status created and returns its server-assigned id.
func (r *TaskRepo) Insert(ctx context.Context, driverID int64, taskType string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (driver_id, task_type) VALUES ($1, $2) RETURNING task_id`,
		driverID, taskType).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert task for driver %d: %w", driverID, err)
	}
	return id, nil
}

// Get returns a task by id, or nil when absent.
func (r *TaskRepo) Get(ctx context.Context, taskID int64) (*models.Task, error) {
	var t models.Task
	err := r.db.GetContext(ctx, &t,
		`SELECT `+taskColumns+` FROM tasks WHERE task_id = $1`, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", taskID, err)
	}
	return &t, nil
}

// GetOwnedInProgress returns the task only when it belongs to the driver and
// is currently in progress; nil otherwise.
func (r *TaskRepo) GetOwnedInProgress(ctx context.Context, taskID, driverID int64) (*models.Task, error) {
	var t models.Task
	err := r.db.GetContext(ctx, &t,
		`SELECT `+taskColumns+` FROM tasks
		  WHERE task_id = $1 AND driver_id = $2 AND status = $3`,
		taskID, driverID, models.TaskInProgress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d for driver %d: %w", taskID, driverID, err)
	}
	return &t, nil
}

// Claim atomically advances the task from created to in_progress and records
// the claiming manager. The status guard in the WHERE clause makes the
// check-and-set a single conditional update, so concurrent claimers yield
// exactly one winner. Returns false when the task was already taken.
func (r *TaskRepo) Claim(ctx context.Context, taskID, managerID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = $1, manager_id = $2, updated_at = NOW()
		  WHERE task_id = $3 AND status = $4`,
		models.TaskInProgress, managerID, taskID, models.TaskCreated)
	if err != nil {
		return false, fmt.Errorf("claim task %d: %w", taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim task %d: %w", taskID, err)
	}
	return n == 1, nil
}

// Complete advances the task to completed, conditional on the stored manager
// id matching the invoker. Returns false when the guard did not match.
func (r *TaskRepo) Complete(ctx context.Context, taskID, managerID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = $1, updated_at = NOW()
		  WHERE task_id = $2 AND manager_id = $3 AND status = $4`,
		models.TaskCompleted, taskID, managerID, models.TaskInProgress)
	if err != nil {
		return false, fmt.Errorf("complete task %d: %w", taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("complete task %d: %w", taskID, err)
	}
	return n == 1, nil
}

// SetDelivery stores BOL and trailer together in one update, guarded on the
// owning driver, the in_progress status, and the BOL not being set yet. The
// last guard makes the write at-most-once: a repeat submission misses.
func (r *TaskRepo) SetDelivery(ctx context.Context, taskID, driverID int64, bol, trailer string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET bol_number = $1, trailer_number = $2, updated_at = NOW()
		  WHERE task_id = $3 AND driver_id = $4 AND status = $5 AND bol_number IS NULL`,
		bol, trailer, taskID, driverID, models.TaskInProgress)
	if err != nil {
		return false, fmt.Errorf("set delivery on task %d: %w", taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set delivery on task %d: %w", taskID, err)
	}
	return n == 1, nil
}

// RecentByDriver returns the driver's most recently updated tasks.
func (r *TaskRepo) RecentByDriver(ctx context.Context, driverID int64, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskColumns+` FROM tasks
		  WHERE driver_id = $1 ORDER BY updated_at DESC LIMIT $2`,
		driverID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent tasks for driver %d: %w", driverID, err)
	}
	return tasks, nil
}
