package model

import "errors"

type StatKind string

const (
	StatCount    StatKind = "count"
	StatCurrency StatKind = "currency"
	StatPercent  StatKind = "percent"
)

type StatCard struct {
	Title string
	Value float64
	Kind  StatKind
	Color string
	Icon  string
}

type Activity struct {
	Text  string
	Ago   string
	Color string
}

// Series is a labelled numeric series for the weekly chart.
type Series struct {
	Labels []string
	Values []float64
}

func (s Series) Validate() error {
	if len(s.Labels) != len(s.Values) {
		return errors.New("model: series labels and values differ in length")
	}
	return nil
}

func (s Series) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
