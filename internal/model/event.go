package model

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrIncompleteDraft = errors.New("model: event title, date and time are required")

var validate = validator.New()

type Event struct {
	ID    int64
	Title string
	Date  string
	Time  string
}

func (e Event) Validate() error {
	if e.ID <= 0 {
		return errors.New("model: event id must be positive")
	}
	if err := e.Draft().Validate(); err != nil {
		return err
	}
	return nil
}

func (e Event) Draft() EventDraft {
	return EventDraft{Title: e.Title, Date: e.Date, Time: e.Time}
}

// EventDraft holds the add-event form fields. Only presence is checked;
// date and time formats are free text.
type EventDraft struct {
	Title string `validate:"required"`
	Date  string `validate:"required"`
	Time  string `validate:"required"`
}

func (d EventDraft) Trimmed() EventDraft {
	return EventDraft{
		Title: strings.TrimSpace(d.Title),
		Date:  strings.TrimSpace(d.Date),
		Time:  strings.TrimSpace(d.Time),
	}
}

func (d EventDraft) Validate() error {
	if err := validate.Struct(d.Trimmed()); err != nil {
		return ErrIncompleteDraft
	}
	return nil
}
