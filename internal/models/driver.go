package models

import "time"

// Driver is a registered driver profile keyed by the Telegram chat user id.
type Driver struct {
	ID          int64     `db:"id"`
	DriverID    int64     `db:"driver_id"`
	Company     string    `db:"company"`
	FullName    string    `db:"full_name"`
	Phone       string    `db:"phone"`
	TruckNumber string    `db:"truck_number"`
	CreatedAt   time.Time `db:"created_at"`
}

// Profile carries the fields collected by the registration and edit dialogs.
type Profile struct {
	Company     string
	FullName    string
	Phone       string
	TruckNumber string
}
