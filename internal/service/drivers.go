// Package service implements the registration and task lifecycle transitions
// on top of small store interfaces, keeping the state machines testable
// without a live database.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Remphph/Track-bot/internal/logger"
	"github.com/Remphph/Track-bot/internal/models"
	"github.com/Remphph/Track-bot/internal/storage"
)

// DriverStore is the persistence surface required by the driver flows.
type DriverStore interface {
	Get(ctx context.Context, driverID int64) (*models.Driver, error)
	Insert(ctx context.Context, driverID int64, p models.Profile) error
	Update(ctx context.Context, driverID int64, p models.Profile) error
}

// Drivers runs the registration and profile-edit terminal actions.
type Drivers struct {
	store DriverStore
}

// NewDrivers builds the driver service.
func NewDrivers(store DriverStore) *Drivers {
	return &Drivers{store: store}
}

// Get returns the registered driver or nil when the chat user is unknown.
func (s *Drivers) Get(ctx context.Context, driverID int64) (*models.Driver, error) {
	return s.store.Get(ctx, driverID)
}

// Register inserts a new driver profile. Registering the same chat user twice
// returns ErrAlreadyRegistered and leaves the existing row untouched.
func (s *Drivers) Register(ctx context.Context, driverID int64, p models.Profile) error {
	if err := s.store.Insert(ctx, driverID, p); err != nil {
		if errors.Is(err, storage.ErrDuplicateDriver) {
			logger.Error(ctx, "service.drivers", "driver.register",
				slog.String("status", "fail"),
				slog.String("reason", "duplicate"),
				slog.Int64("driver_id", driverID),
			)
			return ErrAlreadyRegistered
		}
		return err
	}
	logger.Info(ctx, "service.drivers", "driver.register",
		slog.String("status", "ok"),
		slog.Int64("driver_id", driverID),
	)
	return nil
}

// UpdateProfile replaces every profile field of a registered driver.
func (s *Drivers) UpdateProfile(ctx context.Context, driverID int64, p models.Profile) error {
	if err := s.store.Update(ctx, driverID, p); err != nil {
		return err
	}
	logger.Info(ctx, "service.drivers", "driver.edit",
		slog.String("status", "ok"),
		slog.Int64("driver_id", driverID),
	)
	return nil
}
