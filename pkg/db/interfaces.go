package db

import (
	"context"
	"time"
)

// TxRunner runs fn inside a single database transaction. Store calls made
// with the context passed to fn are bound to that transaction; fn returning
// an error rolls the transaction back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventStore defines the interface for event database operations
type EventStore interface {
	InsertEvent(ctx context.Context, event *Event) (string, error)
	EventByID(ctx context.Context, eventID string) (*Event, error)
	EventsInRange(ctx context.Context, start, end time.Time) ([]Event, error)
	UpdateEvent(ctx context.Context, eventID string, patch EventPatch) (string, error)
}

// PositionStore defines the interface for position database operations
type PositionStore interface {
	Positions(ctx context.Context) ([]Position, error)
	PositionByID(ctx context.Context, positionID string) (*Position, error)
	InsertPosition(ctx context.Context, position *Position) (string, error)
	UpdatePosition(ctx context.Context, positionID string, patch PositionPatch) (string, error)
}

// ShiftStore defines the interface for shift database operations
type ShiftStore interface {
	InsertShifts(ctx context.Context, eventID string, entries []ShiftEntry) ([]string, error)
	SoftDeleteShift(ctx context.Context, shiftID string) (string, error)
	UpdateShiftQuantity(ctx context.Context, shiftID string, quantity int) (string, error)
	ShiftQuantity(ctx context.Context, shiftID string) (int, error)
	CountActiveSlots(ctx context.Context, shiftID string) (int, error)
}

// SlotStore defines the interface for slot database operations. AssignUser
// runs its insert-count-raise sequence inside InTx.
type SlotStore interface {
	TxRunner
	InsertSlot(ctx context.Context, shiftID, userID string) (string, error)
	CountActiveSlots(ctx context.Context, shiftID string) (int, error)
	ShiftQuantity(ctx context.Context, shiftID string) (int, error)
	UpdateShiftQuantity(ctx context.Context, shiftID string, quantity int) (string, error)
	EventRosterRows(ctx context.Context, eventID string) ([]EventRosterRow, error)
	SoftDeleteSlot(ctx context.Context, slotID string) (string, error)
	ReassignSlot(ctx context.Context, slotID, userID string) (string, error)
}

// TemplateStore defines the interface for template database operations.
// Instantiating a template writes an event and its shifts inside InTx.
type TemplateStore interface {
	TxRunner
	Templates(ctx context.Context) ([]Template, error)
	TemplateByID(ctx context.Context, templateID string) (*Template, error)
	InsertTemplate(ctx context.Context, template *Template) (string, error)
	UpdateTemplate(ctx context.Context, templateID string, patch TemplatePatch) (string, error)
	TemplatePositions(ctx context.Context, templateID string) ([]TemplatePosition, error)
	TemplatePositionDetails(ctx context.Context, templateID string) ([]TemplatePositionDetail, error)
	InsertTemplatePositions(ctx context.Context, templateID string, entries []TemplatePositionEntry) ([]string, error)
	UpdateTemplatePositionQuantity(ctx context.Context, templatePositionID string, quantity int) (string, error)
	DeleteTemplatePosition(ctx context.Context, templatePositionID string) (string, error)
	InsertEvent(ctx context.Context, event *Event) (string, error)
	InsertShifts(ctx context.Context, eventID string, entries []ShiftEntry) ([]string, error)
}

// UserStore defines the read-only interface for user accounts, which are
// owned by the external auth provider
type UserStore interface {
	Users(ctx context.Context) ([]User, error)
	UserByID(ctx context.Context, userID string) (*User, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements it.
type Database interface {
	EventStore
	PositionStore
	ShiftStore
	SlotStore
	TemplateStore
	UserStore
}
