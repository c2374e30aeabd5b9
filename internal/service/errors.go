package service

import "errors"

// Sentinel errors separating the recoverable rejection classes. Handlers map
// them to user-visible replies; anything else is a store failure and surfaces
// as a generic retry message.
var (
	// ErrNotRegistered rejects task operations from unknown chat users.
	ErrNotRegistered = errors.New("driver is not registered")
	// ErrAlreadyRegistered rejects a duplicate registration.
	ErrAlreadyRegistered = errors.New("driver is already registered")
	// ErrTaskNotFound covers missing tasks and tasks not owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTaskUnavailable rejects a stale claim or complete on a task that
	// already moved on.
	ErrTaskUnavailable = errors.New("task is already taken or completed")
	// ErrNotTaskOwner rejects completion by a manager other than the claimer.
	ErrNotTaskOwner = errors.New("task belongs to another manager")
	// ErrDeliverySet rejects a repeat delivery-data submission; BOL and
	// trailer are written at most once per task.
	ErrDeliverySet = errors.New("delivery data already submitted")
	// ErrContentRejected marks a content-policy screening hit.
	ErrContentRejected = errors.New("content rejected")
)
