package tui

import (
	"metabolic-report/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenReports Screen = iota
	ScreenDetail
	ScreenHelp
)

// Options holds display preferences from the config
type Options struct {
	PageSize   int
	ChartWidth int
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	reports ReportsModel
	detail  ReportDetailModel
	help    HelpModel

	// Services
	queryService *service.QueryService
	opts         Options

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(queryService *service.QueryService, opts Options) *App {
	if opts.PageSize <= 0 {
		opts.PageSize = service.DefaultPageSize
	}
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = 50
	}
	return &App{
		screen:       ScreenReports,
		queryService: queryService,
		opts:         opts,
		reports:      NewReportsModel(queryService, opts.PageSize),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.reports.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings, unless the list is waiting on a delete confirmation
		if a.screen != ScreenReports || !a.reports.confirming {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenReports
				a.status = ""
				return a, a.reports.Init()
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenDetail:
					a.screen = ScreenReports
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenReportMsg:
		a.screen = ScreenDetail
		a.status = ""
		a.detail = NewReportDetailModel(a.queryService, msg.ReportID, a.width, a.height, a.opts.ChartWidth)
		return a, a.detail.Init()

	case ReportDeletedMsg:
		if msg.Err != nil {
			a.status = "Delete failed: " + msg.Err.Error()
		} else {
			a.status = "Deleted " + msg.Name
		}
		a.screen = ScreenReports
		return a, a.reports.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenReports:
		var m tea.Model
		m, cmd = a.reports.Update(msg)
		a.reports = m.(ReportsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(ReportDetailModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenReports:
		content = a.reports.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Metabolic Report Scores")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Reports", ScreenReports},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (item.screen == ScreenReports && a.screen == ScreenDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}
	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// OpenReportMsg asks the app to show a report's detail screen
type OpenReportMsg struct {
	ReportID string
}

// ReportDeletedMsg is sent after a delete from the list
type ReportDeletedMsg struct {
	Name string
	Err  error
}
