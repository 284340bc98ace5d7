package update

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dashd/internal/model"
	"github.com/sandeepkv93/dashd/internal/store"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Tables    string
	Calendar  string
	Kanban    string
	Theme     string
	Help      string
	Quit      string
}

// DashboardData is the read-only content of the stats view, loaded once at
// startup.
type DashboardData struct {
	Cards    []model.StatCard
	Activity []model.Activity
	Series   model.Series
}

type SidebarState struct {
	Focused bool
	Cursor  int
}

type UsersState struct {
	Cursor int
}

// Modal field indexes, in tab order.
const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldCancel
	fieldSubmit
	fieldCount
)

type CalendarState struct {
	ModalOpen bool
	Focus     int
}

type KanbanState struct {
	Column int
	Card   int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Store       *store.Store
	Dashboard   DashboardData
	Sidebar     SidebarState
	Users       UsersState
	Calendar    CalendarState
	Kanban      KanbanState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	logger       *log.Logger
	searchInput  textinput.Model
	commandInput textinput.Model
	titleInput   textinput.Model
	dateInput    textinput.Model
	timeInput    textinput.Model
	helpModel    help.Model
	helpViewport viewport.Model
	uiDensity    int
}

type Option func(*Model)

func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDashboard(data DashboardData) Option {
	return func(m *Model) {
		m.Dashboard = data
	}
}

func WithDensity(level int) Option {
	return func(m *Model) {
		if level >= 1 && level <= 3 {
			m.uiDensity = level
		}
	}
}

type SelectTabMsg struct {
	Tab model.Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(st *store.Store, opts ...Option) Model {
	m := Model{
		Store: st,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Tables:    "2",
			Calendar:  "3",
			Kanban:    "4",
			Theme:     "t",
			Help:      "?",
			Quit:      "q",
		},
		logger:    log.New(io.Discard),
		uiDensity: 1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.Sidebar.Cursor = tabIndex(st.ActiveTab())
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search users..."
	m.searchInput.Prompt = "🔍 "
	m.searchInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 36

	m.titleInput = newModalInput("Event title")
	m.dateInput = newModalInput("YYYY-MM-DD")
	m.timeInput = newModalInput("HH:MM")

	m.helpModel = help.New()
	m.helpViewport = viewport.New(40, 12)
}

func newModalInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 128
	in.Width = 34
	return in
}

func (m *Model) syncBubbleData() {
	m.helpViewport.Height = densityHelpHeight(m.uiDensity)
	if m.HelpVisible {
		m.helpViewport.SetContent(renderCheatSheet(m.Store.ActiveTab(), m.Store.Theme()))
	}
	m.commandInput.SetValue(m.Palette.Input)
	// Focus restarts the blink, so only call it on a state change.
	if m.Palette.Active && !m.commandInput.Focused() {
		m.commandInput.Focus()
	} else if !m.Palette.Active && m.commandInput.Focused() {
		m.commandInput.Blur()
	}
}

func densityHelpHeight(level int) int {
	switch level {
	case 2:
		return 16
	case 3:
		return 22
	default:
		return 12
	}
}

func tabIndex(tab model.Tab) int {
	for i, t := range model.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}
