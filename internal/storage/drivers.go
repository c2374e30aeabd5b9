// Package storage implements the Postgres repositories for drivers and tasks.
// Every mutation is a fixed, explicit statement; there is no dynamic SQL.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Remphph/Track-bot/internal/models"
)

// ErrDuplicateDriver is returned when a driver id is registered twice.
var ErrDuplicateDriver = errors.New("storage: driver already registered")

const pgUniqueViolation = "23505"

// DriverRepo persists driver profiles.
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepo wraps the shared connection pool.
func NewDriverRepo(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// Get returns the driver registered under the chat user id, or nil when absent.
func (r *DriverRepo) Get(ctx context.Context, driverID int64) (*models.Driver, error) {
	var d models.Driver
	err := r.db.GetContext(ctx, &d,
		`SELECT id, driver_id, company, full_name, phone, truck_number, created_at
		   FROM drivers WHERE driver_id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get driver %d: %w", driverID, err)
	}
	return &d, nil
}

// Insert creates the driver row. A second insert for the same chat user id
// fails with ErrDuplicateDriver.
func (r *DriverRepo) Insert(ctx context.Context, driverID int64, p models.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO drivers (driver_id, company, full_name, phone, truck_number)
		 VALUES ($1, $2, $3, $4, $5)`,
		driverID, p.Company, p.FullName, p.Phone, p.TruckNumber)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrDuplicateDriver
		}
		return fmt.Errorf("insert driver %d: %w", driverID, err)
	}
	return nil
}

// Update replaces all profile fields of an existing driver.
func (r *DriverRepo) Update(ctx context.Context, driverID int64, p models.Profile) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET company = $1, full_name = $2, phone = $3, truck_number = $4
		  WHERE driver_id = $5`,
		p.Company, p.FullName, p.Phone, p.TruckNumber, driverID)
	if err != nil {
		return fmt.Errorf("update driver %d: %w", driverID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update driver %d: %w", driverID, err)
	}
	if n == 0 {
		return fmt.Errorf("update driver %d: no such driver", driverID)
	}
	return nil
}
