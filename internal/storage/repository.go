package storage

import "errors"

var (
	ErrNotFound   = errors.New("storage: not found")
	ErrInvalidRow = errors.New("storage: invalid catalog row")
)

// WeeklySeries is the name of the dashboard chart series.
const WeeklySeries = "weekly"
