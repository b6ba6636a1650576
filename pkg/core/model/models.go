package model

import "github.com/shiftline/shiftline/pkg/db"

// RosterUser carries the user fields rendered next to a filled slot
type RosterUser struct {
	ID          string `validate:"required"`
	DisplayName string `validate:"required"`
	Image       *string
	NameFirst   *string
	NameLast    *string
}

// FilledSlot is one occupied seat in a shift's roster
type FilledSlot struct {
	ID   string     `validate:"required"`
	User RosterUser `validate:"required"`
}

// PositionView is the position detail nested inside a roster shift
type PositionView struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Display     string `validate:"required"`
	Description *string
}

// ShiftWithSlots is one shift of an event's roster: the position it staffs,
// the desired headcount, and the filled slots in row order
type ShiftWithSlots struct {
	ID         string       `validate:"required"`
	EventID    string       `validate:"required"`
	PositionID string       `validate:"required"`
	Quantity   int          `validate:"min=1"`
	Position   PositionView `validate:"required"`
	Slots      []FilledSlot `validate:"dive"`
}

// TemplateWithPositions is a template together with its position roster
type TemplateWithPositions struct {
	Template  db.Template
	Positions []db.TemplatePositionDetail
}
