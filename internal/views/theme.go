package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dashd/internal/model"
)

// Tokens is the color set one theme resolves to.
type Tokens struct {
	Theme      model.Theme
	Background lipgloss.Color
	Surface    lipgloss.Color
	Inset      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Input      lipgloss.Color
	Accent     lipgloss.Color
	OnAccent   lipgloss.Color
	Ink        lipgloss.Color
	Danger     lipgloss.Color
}

var (
	lightTokens = Tokens{
		Theme:      model.ThemeLight,
		Background: lipgloss.Color("#f5f5f5"),
		Surface:    lipgloss.Color("#ffffff"),
		Inset:      lipgloss.Color("#f8f9fa"),
		Text:       lipgloss.Color("#333333"),
		Muted:      lipgloss.Color("#666666"),
		Border:     lipgloss.Color("#eeeeee"),
		Input:      lipgloss.Color("#dddddd"),
		Accent:     lipgloss.Color("#2563eb"),
		OnAccent:   lipgloss.Color("#ffffff"),
		Ink:        lipgloss.Color("#000000"),
		Danger:     lipgloss.Color("#ef4444"),
	}
	darkTokens = Tokens{
		Theme:      model.ThemeDark,
		Background: lipgloss.Color("#1a1a1a"),
		Surface:    lipgloss.Color("#2d2d2d"),
		Inset:      lipgloss.Color("#1a1a1a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#cccccc"),
		Border:     lipgloss.Color("#444444"),
		Input:      lipgloss.Color("#444444"),
		Accent:     lipgloss.Color("#2563eb"),
		OnAccent:   lipgloss.Color("#ffffff"),
		Ink:        lipgloss.Color("#ffffff"),
		Danger:     lipgloss.Color("#ef4444"),
	}
)

func TokensFor(theme model.Theme) Tokens {
	if theme == model.ThemeDark {
		return darkTokens
	}
	return lightTokens
}

// ThemeButtonLabel names the theme the toggle switches to.
func ThemeButtonLabel(theme model.Theme) string {
	if theme == model.ThemeDark {
		return "☀️ Light"
	}
	return "🌙 Dark"
}

type badgeColors struct {
	bg lipgloss.Color
	fg lipgloss.Color
}

var badges = map[string]badgeColors{
	"admin":    {bg: lipgloss.Color("#fef3c7"), fg: lipgloss.Color("#92400e")},
	"user":     {bg: lipgloss.Color("#dbeafe"), fg: lipgloss.Color("#1e40af")},
	"manager":  {bg: lipgloss.Color("#d1fae5"), fg: lipgloss.Color("#065f46")},
	"active":   {bg: lipgloss.Color("#d1fae5"), fg: lipgloss.Color("#065f46")},
	"inactive": {bg: lipgloss.Color("#fecaca"), fg: lipgloss.Color("#991b1b")},
	"high":     {bg: lipgloss.Color("#fecaca"), fg: lipgloss.Color("#991b1b")},
	"medium":   {bg: lipgloss.Color("#fef3c7"), fg: lipgloss.Color("#92400e")},
	"low":      {bg: lipgloss.Color("#d1fae5"), fg: lipgloss.Color("#065f46")},
}

var dots = map[string]lipgloss.Color{
	"green":  lipgloss.Color("#10b981"),
	"blue":   lipgloss.Color("#2563eb"),
	"orange": lipgloss.Color("#f59e0b"),
	"purple": lipgloss.Color("#8b5cf6"),
}

// badgeStyle falls back to the theme's muted colors for unknown classes.
func badgeStyle(class string, tk Tokens) lipgloss.Style {
	c, ok := badges[class]
	if !ok {
		return lipgloss.NewStyle().Foreground(tk.Muted).Padding(0, 1)
	}
	return lipgloss.NewStyle().Background(c.bg).Foreground(c.fg).Bold(true).Padding(0, 1)
}

func dotColor(name string, tk Tokens) lipgloss.Color {
	if c, ok := dots[name]; ok {
		return c
	}
	return tk.Accent
}
