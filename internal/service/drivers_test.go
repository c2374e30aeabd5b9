package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Remphph/Track-bot/internal/models"
)

func TestRegisterAndGet(t *testing.T) {
	store := newFakeDriverStore()
	svc := NewDrivers(store)

	driver, err := svc.Get(context.Background(), 101)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if driver != nil {
		t.Fatalf("unknown driver = %+v", driver)
	}

	profile := models.Profile{
		Company:     "Freight LLC",
		FullName:    "John Smith",
		Phone:       "+15551234567",
		TruckNumber: "TRK-100",
	}
	if err := svc.Register(context.Background(), 101, profile); err != nil {
		t.Fatalf("register: %v", err)
	}

	driver, err = svc.Get(context.Background(), 101)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if driver == nil || driver.FullName != "John Smith" || driver.Phone != "+15551234567" {
		t.Fatalf("driver = %+v", driver)
	}
}

func TestRegisterTwice(t *testing.T) {
	store := newFakeDriverStore()
	svc := NewDrivers(store)

	profile := models.Profile{Company: "A", FullName: "B", Phone: "+15551234567", TruckNumber: "T"}
	if err := svc.Register(context.Background(), 101, profile); err != nil {
		t.Fatalf("register: %v", err)
	}

	again := models.Profile{Company: "Other", FullName: "Other", Phone: "+15559999999", TruckNumber: "X"}
	if err := svc.Register(context.Background(), 101, again); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}

	// the original profile is untouched
	driver, _ := svc.Get(context.Background(), 101)
	if driver.Company != "A" {
		t.Fatalf("company = %q after duplicate register", driver.Company)
	}
}

func TestUpdateProfile(t *testing.T) {
	store := newFakeDriverStore()
	svc := NewDrivers(store)

	if err := svc.UpdateProfile(context.Background(), 101, models.Profile{}); err == nil {
		t.Fatal("update of unknown driver succeeded")
	}

	profile := models.Profile{Company: "A", FullName: "B", Phone: "+15551234567", TruckNumber: "T"}
	if err := svc.Register(context.Background(), 101, profile); err != nil {
		t.Fatalf("register: %v", err)
	}

	updated := models.Profile{Company: "New Co", FullName: "New Name", Phone: "+15550000000", TruckNumber: "TRK-2"}
	if err := svc.UpdateProfile(context.Background(), 101, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	driver, _ := svc.Get(context.Background(), 101)
	if driver.Company != "New Co" || driver.TruckNumber != "TRK-2" {
		t.Fatalf("driver after update = %+v", driver)
	}
}
