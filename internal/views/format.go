package views

import (
	"math"

	"github.com/sandeepkv93/dashd/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatStat renders a card value with English digit grouping.
func FormatStat(card model.StatCard) string {
	p := message.NewPrinter(language.English)
	switch card.Kind {
	case model.StatCurrency:
		return p.Sprintf("$%d", int64(math.Round(card.Value)))
	case model.StatPercent:
		return p.Sprintf("%.1f%%", card.Value)
	default:
		return p.Sprintf("%d", int64(math.Round(card.Value)))
	}
}

// Title upper-cases the first letter of each word. Casers keep state, so
// each call builds its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
