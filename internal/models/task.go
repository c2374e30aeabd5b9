package models

import (
	"database/sql"
	"time"
)

// TaskStatus enumerates the task lifecycle states. Transitions are one
// directional: created -> in_progress -> completed.
type TaskStatus string

const (
	// TaskCreated is the initial status of a freshly requested task.
	TaskCreated TaskStatus = "created"
	// TaskInProgress marks a task claimed by a manager.
	TaskInProgress TaskStatus = "in_progress"
	// TaskCompleted is the terminal status.
	TaskCompleted TaskStatus = "completed"
)

// Task is a driver request routed to the manager channel.
type Task struct {
	TaskID        int64          `db:"task_id"`
	DriverID      int64          `db:"driver_id"`
	TaskType      string         `db:"task_type"`
	Status        TaskStatus     `db:"status"`
	ManagerID     sql.NullInt64  `db:"manager_id"`
	BOLNumber     sql.NullString `db:"bol_number"`
	TrailerNumber sql.NullString `db:"trailer_number"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// TextFields returns the free-text fields of the task for content screening.
func (t Task) TextFields() []string {
	return []string{
		t.TaskType,
		string(t.Status),
		t.BOLNumber.String,
		t.TrailerNumber.String,
	}
}
