package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dashd/internal/model"
)

const (
	sidebarWidth = 18
	contentWidth = 96
	sideWidth    = 44
)

type SidebarItem struct {
	Label   string
	Active  bool
	Focused bool
}

type AppData struct {
	Header      string
	ThemeButton string
	Sidebar     []SidebarItem
	Content     string
	SidePane    string
	StatusLine  string
	StatusError bool
	Footer      string
}

func RenderApp(data AppData, tk Tokens) string {
	logo := lipgloss.NewStyle().Bold(true).Foreground(tk.Accent).Render("Admin Dashboard")
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tk.Accent).
		Foreground(tk.Accent).
		Padding(0, 1).
		Render(data.ThemeButton)
	gap := contentWidth + sidebarWidth - lipgloss.Width(logo) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, logo, strings.Repeat(" ", gap), button)

	sidebar := renderSidebar(data.Sidebar, tk)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tk.Border).
		Padding(0, 1).
		Width(contentWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panel.Render(data.Content))
	if strings.TrimSpace(data.SidePane) != "" {
		side := panel.Width(sideWidth).Render(data.SidePane)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	lines := []string{
		header,
		lipgloss.NewStyle().Foreground(tk.Muted).Render(data.Header),
		body,
	}
	if data.StatusLine != "" {
		status := lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
		if data.StatusError {
			status = status.Foreground(tk.Danger)
		}
		lines = append(lines, status.Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(tk.Muted).Render(data.Footer))
	}
	return lipgloss.NewStyle().
		Background(tk.Background).
		Foreground(tk.Text).
		Render(strings.Join(lines, "\n"))
}

func renderSidebar(items []SidebarItem, tk Tokens) string {
	base := lipgloss.NewStyle().Width(sidebarWidth).Padding(0, 1).Foreground(tk.Muted)
	rows := make([]string, 0, len(items))
	for _, item := range items {
		style := base
		label := item.Label
		if item.Active {
			style = style.Background(tk.Accent).Foreground(tk.OnAccent).Bold(true)
		}
		if item.Focused {
			label = "› " + label
		} else {
			label = "  " + label
		}
		rows = append(rows, style.Render(label))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(tk.Border).
		PaddingTop(1).
		Render(strings.Join(rows, "\n\n"))
}

// RenderMarkdown renders md with the glamour style that matches theme.
func RenderMarkdown(md string, theme model.Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == model.ThemeDark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
