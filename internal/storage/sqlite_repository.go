package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/dashd/internal/model"
)

// memoryDSN keeps the catalog in process memory; nothing is written to disk.
const memoryDSN = ":memory:"

type SQLiteCatalog struct {
	db *sql.DB
}

func NewSQLiteCatalog(db *sql.DB) (*SQLiteCatalog, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteCatalog{db: db}, nil
}

// OpenMemory opens a private in-memory database and seeds it.
func OpenMemory() (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every new connection to :memory: is a fresh empty database.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	catalog, err := NewSQLiteCatalog(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return catalog, nil
}

func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

func (c *SQLiteCatalog) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, title, status, priority FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, title, event_date, event_time FROM events ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Event, 0)
	for rows.Next() {
		var r eventRow
		if err := rows.Scan(&r.ID, &r.Title, &r.Date, &r.Time); err != nil {
			return nil, err
		}
		if err := checkRow("event", r); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, email, role, status FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var r userRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Role, &r.Status); err != nil {
			return nil, err
		}
		if err := checkRow("user", r); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) ListStatCards(ctx context.Context) ([]model.StatCard, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT title, value, kind, color, icon FROM stat_cards ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.StatCard, 0, 4)
	for rows.Next() {
		var r statCardRow
		if err := rows.Scan(&r.Title, &r.Value, &r.Kind, &r.Color, &r.Icon); err != nil {
			return nil, err
		}
		if err := checkRow("stat card", r); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) ListActivity(ctx context.Context) ([]model.Activity, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT body, ago, color FROM activity ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Activity, 0, 3)
	for rows.Next() {
		var r activityRow
		if err := rows.Scan(&r.Text, &r.Ago, &r.Color); err != nil {
			return nil, err
		}
		if err := checkRow("activity", r); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func (c *SQLiteCatalog) Series(ctx context.Context, name string) (model.Series, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT label, value FROM chart_points WHERE series = ? ORDER BY position ASC`, name)
	if err != nil {
		return model.Series{}, err
	}
	defer rows.Close()

	var out model.Series
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return model.Series{}, err
		}
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, value)
	}
	if err := rows.Err(); err != nil {
		return model.Series{}, err
	}
	if len(out.Values) == 0 {
		return model.Series{}, ErrNotFound
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var r taskRow
	if err := s.Scan(&r.ID, &r.Title, &r.Status, &r.Priority); err != nil {
		return model.Task{}, err
	}
	if err := checkRow("task", r); err != nil {
		return model.Task{}, err
	}
	return r.toModel(), nil
}
