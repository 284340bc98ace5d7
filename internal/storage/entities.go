package storage

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sandeepkv93/dashd/internal/model"
)

var rowValidator = validator.New()

type taskRow struct {
	ID       int    `validate:"gt=0"`
	Title    string `validate:"required"`
	Status   string `validate:"oneof=todo progress done"`
	Priority string `validate:"oneof=low medium high"`
}

type eventRow struct {
	ID    int64  `validate:"gt=0"`
	Title string `validate:"required"`
	Date  string `validate:"required"`
	Time  string `validate:"required"`
}

type userRow struct {
	ID     int    `validate:"gt=0"`
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Role   string `validate:"oneof=Admin User Manager"`
	Status string `validate:"oneof=Active Inactive"`
}

type statCardRow struct {
	Title string  `validate:"required"`
	Value float64 `validate:"gte=0"`
	Kind  string  `validate:"oneof=count currency percent"`
	Color string  `validate:"required"`
	Icon  string
}

type activityRow struct {
	Text  string `validate:"required"`
	Ago   string `validate:"required"`
	Color string `validate:"required"`
}

func checkRow(kind string, row any) error {
	if err := rowValidator.Struct(row); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRow, kind, err)
	}
	return nil
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:       r.ID,
		Title:    r.Title,
		Status:   model.Status(r.Status),
		Priority: model.Priority(r.Priority),
	}
}

func (r eventRow) toModel() model.Event {
	return model.Event{ID: r.ID, Title: r.Title, Date: r.Date, Time: r.Time}
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Role:   model.Role(r.Role),
		Status: model.UserStatus(r.Status),
	}
}

func (r statCardRow) toModel() model.StatCard {
	return model.StatCard{
		Title: r.Title,
		Value: r.Value,
		Kind:  model.StatKind(r.Kind),
		Color: r.Color,
		Icon:  r.Icon,
	}
}

func (r activityRow) toModel() model.Activity {
	return model.Activity{Text: r.Text, Ago: r.Ago, Color: r.Color}
}
