package tui

import (
	"context"
	"fmt"

	"metabolic-report/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReportsModel is the reports list screen model
type ReportsModel struct {
	queryService *service.QueryService
	reports      []service.ReportSummary
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	confirming   bool
	err          error
}

// NewReportsModel creates a new reports model
func NewReportsModel(qs *service.QueryService, pageSize int) ReportsModel {
	return ReportsModel{
		queryService: qs,
		pageSize:     pageSize,
		loading:      true,
	}
}

// Init initializes the reports screen
func (m ReportsModel) Init() tea.Cmd {
	return m.loadPage
}

type reportsLoadedMsg struct {
	reports []service.ReportSummary
	total   int
	err     error
}

func (m ReportsModel) loadPage() tea.Msg {
	ctx := context.Background()

	total, err := m.queryService.CountReports(ctx)
	if err != nil {
		return reportsLoadedMsg{err: err}
	}

	reports, err := m.queryService.ListReports(ctx, m.pageSize, m.offset)
	if err != nil {
		return reportsLoadedMsg{err: err}
	}

	return reportsLoadedMsg{reports: reports, total: total}
}

func (m ReportsModel) deleteSelected() tea.Cmd {
	r := m.reports[m.cursor]
	qs := m.queryService
	return func() tea.Msg {
		err := qs.DeleteReport(context.Background(), r.ID)
		return ReportDeletedMsg{Name: r.Name, Err: err}
	}
}

// Update handles messages
func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.reports = msg.reports
		m.total = msg.total
		// Deleting the last row of the last page leaves an empty page
		if len(m.reports) == 0 && m.offset > 0 && m.total > 0 {
			m.offset -= m.pageSize
			if m.offset < 0 {
				m.offset = 0
			}
			m.loading = true
			return m, m.loadPage
		}
		if m.cursor >= len(m.reports) {
			m.cursor = max(len(m.reports)-1, 0)
		}

	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			if msg.String() == "y" && m.cursor < len(m.reports) {
				m.loading = true
				return m, m.deleteSelected()
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				// Go to previous page
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.reports)-1 {
				m.cursor++
			} else if m.offset+len(m.reports) < m.total {
				// Go to next page
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "x", "delete":
			if len(m.reports) > 0 {
				m.confirming = true
			}
		case "enter":
			if len(m.reports) > 0 && m.cursor < len(m.reports) {
				reportID := m.reports[m.cursor].ID
				return m, func() tea.Msg {
					return OpenReportMsg{ReportID: reportID}
				}
			}
		}
	}
	return m, nil
}

// View renders the reports list
func (m ReportsModel) View() string {
	if m.loading {
		return "\n  Loading reports..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.reports) == 0 {
		return "\n  No reports yet. Score one with: metabolic score <extraction.json>"
	}

	var sections []string

	// Title with pagination info
	startNum := m.offset + 1
	endNum := m.offset + len(m.reports)
	title := cardTitleStyle.Render(fmt.Sprintf("Reports (%d-%d of %d)", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-14s  %-24s  %7s  %4s  %4s  %4s  %-20s",
		"Scored", "Name", "Overall", "MR", "FB", "HRV", "Data"))
	sections = append(sections, header)

	for i, r := range m.reports {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-14s  %-24s  %7d  %4d  %4d  %4d  %-20s",
			cursor,
			truncateName(r.ScoredAgo, 14),
			truncateName(r.Name, 24),
			r.Overall,
			r.Scores.MetabolicRate,
			r.Scores.FatBurning,
			r.Scores.HRV,
			r.DataQuality,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	var help string
	if m.confirming {
		help = warningStyle.Render(fmt.Sprintf("\n  Delete %q? y: confirm  any other key: cancel", m.reports[m.cursor].Name))
	} else {
		help = statusStyle.Render("\n  enter: view details  j/k: navigate  pgup/pgdn: page  x: delete  r: refresh")
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func truncateName(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
