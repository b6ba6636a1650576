package db

import "time"

// Status values for soft-deletable rows (shifts and slots). Deleted rows
// stay in the table and are excluded from reads by filter.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Event represents a scheduled occurrence requiring staffing
type Event struct {
	ID          string
	Name        string
	Description *string
	Location    *string
	TimeBegin   time.Time
	TimeEnd     *time.Time
	CreatedBy   *string
}

// Position represents a named role or skill category (e.g. "Medic")
type Position struct {
	ID          string
	Name        string
	Display     string
	Description *string
}

// Template is a reusable event blueprint. TimeBegin/TimeEnd are
// times of day in HH:MM:SS form; the calendar date is supplied when the
// template is instantiated.
type Template struct {
	ID          string
	Name        string
	Display     string
	Description *string
	Location    *string
	TimeBegin   string
	TimeEnd     *string
}

// TemplatePosition is a (template, position, quantity) roster entry.
// At most one row exists per (template, position) pair.
type TemplatePosition struct {
	ID         string
	TemplateID string
	PositionID string
	Quantity   int
}

// TemplatePositionDetail is a roster entry joined with its position
type TemplatePositionDetail struct {
	ID       string
	Quantity int
	Position Position
}

// Shift is the need for Quantity people in a given position at a given event
type Shift struct {
	ID         string
	EventID    string
	PositionID string
	Quantity   int
	Status     string
}

// Slot is one filled seat within a shift, bound to one user
type Slot struct {
	ID      string
	ShiftID string
	UserID  string
	Status  string
}

// User carries the account fields the roster views need. Accounts are
// owned by the external auth provider; this table is read-only here.
type User struct {
	ID          string
	DisplayName string
	Email       string
	Image       *string
	NameFirst   *string
	NameLast    *string
}

// ShiftEntry is one requested shift in a bulk create
type ShiftEntry struct {
	PositionID string
	Quantity   int
}

// TemplatePositionEntry is one requested roster entry in a bulk create
type TemplatePositionEntry struct {
	PositionID string
	Quantity   int
}

// EventPatch is a partial update for an event; nil fields are left
// unchanged. The Clear flags reset a nullable column to NULL and must not
// be combined with a value for the same field.
type EventPatch struct {
	Name        *string
	Description *string
	Location    *string
	TimeBegin   *time.Time
	TimeEnd     *time.Time

	ClearDescription bool
	ClearLocation    bool
	ClearTimeEnd     bool
}

// IsEmpty reports whether the patch changes nothing
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Location == nil &&
		p.TimeBegin == nil && p.TimeEnd == nil &&
		!p.ClearDescription && !p.ClearLocation && !p.ClearTimeEnd
}

// PositionPatch is a partial update for a position; nil fields are left
// unchanged. ClearDescription resets the description to NULL and must not
// be combined with a new value.
type PositionPatch struct {
	Name        *string
	Display     *string
	Description *string

	ClearDescription bool
}

// IsEmpty reports whether the patch changes nothing
func (p PositionPatch) IsEmpty() bool {
	return p.Name == nil && p.Display == nil && p.Description == nil &&
		!p.ClearDescription
}

// TemplatePatch is a partial update for a template's details; nil fields are
// left unchanged. Times of day are normalized by the service layer before
// the patch reaches the store. The Clear flags reset a nullable column to
// NULL and must not be combined with a value for the same field.
type TemplatePatch struct {
	Name        *string
	Display     *string
	Description *string
	Location    *string
	TimeBegin   *string
	TimeEnd     *string

	ClearDescription bool
	ClearLocation    bool
	ClearTimeEnd     bool
}

// IsEmpty reports whether the patch changes nothing
func (p TemplatePatch) IsEmpty() bool {
	return p.Name == nil && p.Display == nil && p.Description == nil &&
		p.Location == nil && p.TimeBegin == nil && p.TimeEnd == nil &&
		!p.ClearDescription && !p.ClearLocation && !p.ClearTimeEnd
}

// EventRosterRow is one row of the flat shift × position × slot × user join
// for an event. Slot and user columns come from left joins and are nil for
// shifts with no active slots.
type EventRosterRow struct {
	ShiftID             string
	EventID             string
	Quantity            int
	PositionID          string
	PositionName        string
	PositionDisplay     string
	PositionDescription *string
	SlotID              *string
	UserID              *string
	UserDisplayName     *string
	UserImage           *string
	UserNameFirst       *string
	UserNameLast        *string
}
