package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Remphph/Track-bot/internal/models"
	"github.com/Remphph/Track-bot/internal/storage"
)

// fakeDriverStore is an in-memory DriverStore.
type fakeDriverStore struct {
	mu      sync.Mutex
	drivers map[int64]models.Driver
	err     error
}

func newFakeDriverStore() *fakeDriverStore {
	return &fakeDriverStore{drivers: make(map[int64]models.Driver)}
}

func (f *fakeDriverStore) Get(_ context.Context, driverID int64) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.drivers[driverID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDriverStore) Insert(_ context.Context, driverID int64, p models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.drivers[driverID]; ok {
		return storage.ErrDuplicateDriver
	}
	f.drivers[driverID] = models.Driver{
		DriverID:    driverID,
		Company:     p.Company,
		FullName:    p.FullName,
		Phone:       p.Phone,
		TruckNumber: p.TruckNumber,
	}
	return nil
}

func (f *fakeDriverStore) Update(_ context.Context, driverID int64, p models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	d, ok := f.drivers[driverID]
	if !ok {
		return errors.New("no such driver")
	}
	d.Company = p.Company
	d.FullName = p.FullName
	d.Phone = p.Phone
	d.TruckNumber = p.TruckNumber
	f.drivers[driverID] = d
	return nil
}

// fakeTaskStore is an in-memory TaskStore with the same conditional-update
// semantics as the SQL implementation.
type fakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]models.Task)}
}

func (f *fakeTaskStore) Insert(_ context.Context, driverID int64, taskType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	now := time.Now()
	f.tasks[f.nextID] = models.Task{
		TaskID:    f.nextID,
		DriverID:  driverID,
		TaskType:  taskType,
		Status:    models.TaskCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return f.nextID, nil
}

func (f *fakeTaskStore) Get(_ context.Context, taskID int64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTaskStore) GetOwnedInProgress(_ context.Context, taskID, driverID int64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.DriverID != driverID || t.Status != models.TaskInProgress {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTaskStore) Claim(_ context.Context, taskID, managerID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.Status != models.TaskCreated {
		return false, nil
	}
	t.Status = models.TaskInProgress
	t.ManagerID.Int64 = managerID
	t.ManagerID.Valid = true
	t.UpdatedAt = time.Now()
	f.tasks[taskID] = t
	return true, nil
}

func (f *fakeTaskStore) Complete(_ context.Context, taskID, managerID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.Status != models.TaskInProgress || !t.ManagerID.Valid || t.ManagerID.Int64 != managerID {
		return false, nil
	}
	t.Status = models.TaskCompleted
	t.UpdatedAt = time.Now()
	f.tasks[taskID] = t
	return true, nil
}

func (f *fakeTaskStore) SetDelivery(_ context.Context, taskID, driverID int64, bol, trailer string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.DriverID != driverID || t.Status != models.TaskInProgress || t.BOLNumber.Valid {
		return false, nil
	}
	t.BOLNumber.String = bol
	t.BOLNumber.Valid = true
	t.TrailerNumber.String = trailer
	t.TrailerNumber.Valid = true
	t.UpdatedAt = time.Now()
	f.tasks[taskID] = t
	return true, nil
}

func (f *fakeTaskStore) RecentByDriver(_ context.Context, driverID int64, limit int) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	for _, t := range f.tasks {
		if t.DriverID == driverID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
