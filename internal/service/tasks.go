package service

import (
	"context"
	"log/slog"

	"github.com/Remphph/Track-bot/internal/content"
	"github.com/Remphph/Track-bot/internal/logger"
	"github.com/Remphph/Track-bot/internal/models"
)

// Recent task listing depth for the status query.
const recentLimit = 5

// TaskStore is the persistence surface required by the task lifecycle.
// Claim and Complete are conditional check-and-set mutations: they report
// false without touching state when their status/ownership guard misses.
type TaskStore interface {
	Insert(ctx context.Context, driverID int64, taskType string) (int64, error)
	Get(ctx context.Context, taskID int64) (*models.Task, error)
	GetOwnedInProgress(ctx context.Context, taskID, driverID int64) (*models.Task, error)
	Claim(ctx context.Context, taskID, managerID int64) (bool, error)
	Complete(ctx context.Context, taskID, managerID int64) (bool, error)
	SetDelivery(ctx context.Context, taskID, driverID int64, bol, trailer string) (bool, error)
	RecentByDriver(ctx context.Context, driverID int64, limit int) ([]models.Task, error)
}

// Tasks drives the task lifecycle: created -> in_progress -> completed.
type Tasks struct {
	store   TaskStore
	drivers DriverStore
	filter  *content.Filter
}

// NewTasks builds the task service.
func NewTasks(store TaskStore, drivers DriverStore, filter *content.Filter) *Tasks {
	return &Tasks{store: store, drivers: drivers, filter: filter}
}

// CreateResult carries the new task id and the requesting driver's profile
// for the manager-channel notification.
type CreateResult struct {
	TaskID int64
	Driver models.Driver
}

// Create inserts a task for a registered driver. Unregistered chat users are
// rejected with ErrNotRegistered and no task row is created.
func (s *Tasks) Create(ctx context.Context, driverID int64, taskType string) (*CreateResult, error) {
	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrNotRegistered
	}

	taskID, err := s.store.Insert(ctx, driverID, taskType)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "service.tasks", "task.create",
		slog.String("status", "ok"),
		slog.Int64("task_id", taskID),
		slog.Int64("driver_id", driverID),
		slog.String("task_type", logger.SanitizeLimit(taskType, 64)),
	)
	return &CreateResult{TaskID: taskID, Driver: *driver}, nil
}

// ClaimResult carries the updated task and its driver for notifications.
type ClaimResult struct {
	Task   models.Task
	Driver models.Driver
}

// Claim assigns a created task to the manager. The task's free-text fields
// are screened first; a content hit rejects the claim without altering task
// state. The status transition itself is a single atomic conditional update,
// so of N concurrent claimers exactly one wins and the rest get
// ErrTaskUnavailable.
func (s *Tasks) Claim(ctx context.Context, taskID, managerID int64) (*ClaimResult, error) {
	task, err := s.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if s.filter.Hit(task.TextFields()...) {
		logger.Warn(ctx, "service.tasks", "task.claim",
			slog.String("status", "skip"),
			slog.String("reason", "content_rejected"),
			slog.Int64("task_id", taskID),
			slog.Int64("manager_id", managerID),
		)
		return nil, ErrContentRejected
	}

	ok, err := s.store.Claim(ctx, taskID, managerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskUnavailable
	}

	claimed, err := s.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if claimed == nil {
		return nil, ErrTaskNotFound
	}
	driver, err := s.drivers.Get(ctx, claimed.DriverID)
	if err != nil {
		return nil, err
	}
	res := &ClaimResult{Task: *claimed}
	if driver != nil {
		res.Driver = *driver
	}
	logger.Info(ctx, "service.tasks", "task.claim",
		slog.String("status", "ok"),
		slog.Int64("task_id", taskID),
		slog.Int64("manager_id", managerID),
	)
	return res, nil
}

// Complete finishes an in-progress task. Only the claiming manager may
// complete it; any other invoker gets ErrNotTaskOwner and the status stays
// in_progress.
func (s *Tasks) Complete(ctx context.Context, taskID, managerID int64) (*ClaimResult, error) {
	ok, err := s.store.Complete(ctx, taskID, managerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The guard missed: distinguish ownership from staleness for the
		// user-visible message.
		task, getErr := s.store.Get(ctx, taskID)
		if getErr != nil {
			return nil, getErr
		}
		if task == nil {
			return nil, ErrTaskNotFound
		}
		if task.ManagerID.Valid && task.ManagerID.Int64 != managerID {
			return nil, ErrNotTaskOwner
		}
		return nil, ErrTaskUnavailable
	}

	task, err := s.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	driver, err := s.drivers.Get(ctx, task.DriverID)
	if err != nil {
		return nil, err
	}
	res := &ClaimResult{Task: *task}
	if driver != nil {
		res.Driver = *driver
	}
	logger.Info(ctx, "service.tasks", "task.complete",
		slog.String("status", "ok"),
		slog.Int64("task_id", taskID),
		slog.Int64("manager_id", managerID),
	)
	return res, nil
}

// ResolveActive returns the task only when it is owned by the driver and in
// progress; otherwise ErrTaskNotFound. A task that already carries delivery
// data is rejected with ErrDeliverySet.
func (s *Tasks) ResolveActive(ctx context.Context, taskID, driverID int64) (*models.Task, error) {
	task, err := s.store.GetOwnedInProgress(ctx, taskID, driverID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.BOLNumber.Valid {
		return nil, ErrDeliverySet
	}
	return task, nil
}

// SubmitDelivery stores BOL and trailer together in one update, accepted at
// most once per task. The trailer value is screened first; a hit leaves the
// task unchanged. The returned task carries the assigned manager, if any, for
// the forwarded notification.
func (s *Tasks) SubmitDelivery(ctx context.Context, taskID, driverID int64, bol, trailer string) (*models.Task, error) {
	if s.filter.Hit(trailer) {
		logger.Warn(ctx, "service.tasks", "task.delivery",
			slog.String("status", "skip"),
			slog.String("reason", "content_rejected"),
			slog.Int64("task_id", taskID),
			slog.Int64("driver_id", driverID),
			slog.String("trailer", logger.SanitizeLimit(trailer, 64)),
		)
		return nil, ErrContentRejected
	}

	ok, err := s.store.SetDelivery(ctx, taskID, driverID, bol, trailer)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The guard missed: separate a repeat submission from a task that
		// is gone or not the driver's.
		existing, getErr := s.store.GetOwnedInProgress(ctx, taskID, driverID)
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil && existing.BOLNumber.Valid {
			return nil, ErrDeliverySet
		}
		return nil, ErrTaskNotFound
	}

	task, err := s.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	logger.Info(ctx, "service.tasks", "task.delivery",
		slog.String("status", "ok"),
		slog.Int64("task_id", taskID),
		slog.Int64("driver_id", driverID),
	)
	return task, nil
}

// Recent returns the driver's most recently updated tasks for the status query.
func (s *Tasks) Recent(ctx context.Context, driverID int64) ([]models.Task, error) {
	return s.store.RecentByDriver(ctx, driverID, recentLimit)
}
