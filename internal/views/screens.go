package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sandeepkv93/dashd/internal/model"
)

type DashboardData struct {
	Cards    []model.StatCard
	Chart    string
	Activity []model.Activity
}

type UsersPanelData struct {
	Users      []model.User
	Cursor     int
	SearchView string
}

type EventModalData struct {
	TitleView string
	DateView  string
	TimeView  string
	// Focus indexes title, date, time, Cancel, Add Event.
	Focus int
}

type CalendarPanelData struct {
	Events []model.Event
	Modal  *EventModalData
}

type KanbanCardData struct {
	ID       int
	Title    string
	Priority string
	CanLeft  bool
	CanRight bool
	Focused  bool
}

type KanbanColumnData struct {
	Title   string
	Focused bool
	Cards   []KanbanCardData
}

type KanbanPanelData struct {
	Columns []KanbanColumnData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
	Markdown    string
}

func heading(text string, tk Tokens) string {
	return lipgloss.NewStyle().Bold(true).Foreground(tk.Accent).Render(text)
}

func button(label string, primary, focused bool, tk Tokens) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if primary {
		style = style.Background(tk.Accent).Foreground(tk.OnAccent)
	} else {
		style = style.Background(tk.Inset).Foreground(tk.Text)
	}
	if focused {
		style = style.Underline(true).Bold(true)
		label = "▸ " + label
	}
	return style.Render(label)
}

func RenderDashboardPanel(data DashboardData, tk Tokens) string {
	cards := make([]string, 0, len(data.Cards))
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tk.Border).
		Background(tk.Surface).
		Padding(0, 1).
		Width(20)
	for _, c := range data.Cards {
		value := lipgloss.NewStyle().Bold(true).Foreground(tk.Accent).Render(FormatStat(c))
		title := lipgloss.NewStyle().Foreground(tk.Muted).Render(c.Title)
		icon := lipgloss.NewStyle().Foreground(dotColor(c.Color, tk)).Render(c.Icon)
		cards = append(cards, cardStyle.Render(icon+" "+value+"\n"+title))
	}

	var b strings.Builder
	b.WriteString(heading("Dashboard Overview", tk) + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")
	b.WriteString(heading("Weekly Analytics", tk) + "\n")
	b.WriteString(data.Chart + "\n\n")
	b.WriteString(heading("Recent Activity", tk) + "\n")
	if len(data.Activity) == 0 {
		b.WriteString("(no activity)")
	}
	for _, a := range data.Activity {
		dot := lipgloss.NewStyle().Foreground(dotColor(a.Color, tk)).Render("●")
		b.WriteString(fmt.Sprintf("%s %s - %s\n", dot, a.Text, a.Ago))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderUsersPanel(data UsersPanelData, tk Tokens) string {
	const (
		colRole   = 2
		colStatus = 3
	)
	rows := make([][]string, 0, len(data.Users))
	for _, u := range data.Users {
		rows = append(rows, []string{u.Name, u.Email, string(u.Role), string(u.Status), "[Edit] [Delete]"})
	}
	users := data.Users
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tk.Border)).
		Headers("Name", "Email", "Role", "Status", "Actions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cellStyle := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cellStyle.Bold(true).Foreground(tk.Accent).Background(tk.Inset)
			}
			if row < 0 || row >= len(users) {
				return cellStyle
			}
			switch col {
			case colRole:
				return badgeStyle(users[row].Role.Badge(), tk)
			case colStatus:
				return badgeStyle(users[row].Status.Badge(), tk)
			}
			if row == data.Cursor {
				return cellStyle.Bold(true).Foreground(tk.Accent)
			}
			return cellStyle.Foreground(tk.Text)
		})

	var b strings.Builder
	b.WriteString(heading("Users Management", tk) + "\n\n")
	b.WriteString(data.SearchView + "   " + button("Add User", true, false, tk) + "\n\n")
	b.WriteString(t.Render() + "\n")
	if len(data.Users) > 0 && data.Cursor >= 0 && data.Cursor < len(data.Users) {
		b.WriteString(lipgloss.NewStyle().Foreground(tk.Muted).Render(fmt.Sprintf("selected: %s <%s>", data.Users[data.Cursor].Name, data.Users[data.Cursor].Email)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderCalendarPanel(data CalendarPanelData, tk Tokens) string {
	var b strings.Builder
	b.WriteString(heading("Calendar", tk) + "\n\n")
	b.WriteString(button("Add Event", true, false, tk) + "\n\n")
	if data.Modal != nil {
		b.WriteString(RenderEventModal(*data.Modal, tk) + "\n\n")
	}

	if len(data.Events) == 0 {
		b.WriteString("(no events)")
		return b.String()
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(tk.Accent).
		Background(tk.Inset).
		Padding(0, 1).
		Width(40).
		MarginBottom(1)
	cards := make([]string, 0, len(data.Events))
	for _, ev := range data.Events {
		title := lipgloss.NewStyle().Bold(true).Render(ev.Title)
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n📅 %s\n🕒 %s", title, ev.Date, ev.Time)))
	}
	rows := make([]string, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], "  ", cards[i+1]))
			continue
		}
		rows = append(rows, cards[i])
	}
	b.WriteString(strings.Join(rows, "\n"))
	return strings.TrimRight(b.String(), "\n")
}

func RenderEventModal(data EventModalData, tk Tokens) string {
	field := func(label, view string, focused bool) string {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tk.Input).
			Width(36)
		if focused {
			style = style.BorderForeground(tk.Accent)
		}
		return lipgloss.NewStyle().Foreground(tk.Muted).Render(label) + "\n" + style.Render(view)
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Cancel", false, data.Focus == 3, tk),
		"  ",
		button("Add Event", true, data.Focus == 4, tk),
	)
	body := strings.Join([]string{
		heading("Add New Event", tk),
		field("title", data.TitleView, data.Focus == 0),
		field("date", data.DateView, data.Focus == 1),
		field("time", data.TimeView, data.Focus == 2),
		actions,
		lipgloss.NewStyle().Foreground(tk.Muted).Render("[tab] next field [enter] confirm [esc] close"),
	}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(tk.Accent).
		Background(tk.Surface).
		Padding(1, 2).
		Render(body)
}

func RenderKanbanPanel(data KanbanPanelData, tk Tokens) string {
	cols := make([]string, 0, len(data.Columns))
	for _, col := range data.Columns {
		cols = append(cols, renderKanbanColumn(col, tk))
	}
	var b strings.Builder
	b.WriteString(heading("Project Board", tk) + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	return b.String()
}

func renderKanbanColumn(col KanbanColumnData, tk Tokens) string {
	border := tk.Border
	if col.Focused {
		border = tk.Accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(tk.Surface).
		Padding(0, 1).
		Width(28)
	title := lipgloss.NewStyle().Bold(true).Foreground(tk.Accent).Width(26).Align(lipgloss.Center).Render(col.Title)

	parts := []string{title}
	if len(col.Cards) == 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(tk.Muted).Render("(empty)"))
	}
	for _, card := range col.Cards {
		parts = append(parts, renderKanbanCard(card, tk))
	}
	return style.Render(strings.Join(parts, "\n"))
}

func renderKanbanCard(card KanbanCardData, tk Tokens) string {
	style := lipgloss.NewStyle().
		Background(tk.Inset).
		Border(lipgloss.NormalBorder()).
		BorderForeground(tk.Border).
		Width(24)
	if card.Focused {
		style = style.BorderForeground(tk.Accent)
	}
	cursor := " "
	if card.Focused {
		cursor = ">"
	}
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s #%d %s", cursor, card.ID, card.Title))
	priority := badgeStyle(card.Priority, tk).Render(card.Priority)

	arrow := lipgloss.NewStyle().Background(tk.Accent).Foreground(tk.OnAccent).Padding(0, 1)
	actions := make([]string, 0, 2)
	if card.CanLeft {
		actions = append(actions, arrow.Render("←"))
	}
	if card.CanRight {
		actions = append(actions, arrow.Render("→"))
	}
	return style.Render(title + "\n" + priority + "\n" + strings.Join(actions, " "))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	out := fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
	if strings.TrimSpace(data.Markdown) != "" {
		out += "\n\n" + data.Markdown
	}
	return out
}
