package tui

import (
	"strings"

	"metabolic-report/internal/analysis"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Reports list"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Reports List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"enter", "Open report"},
		{"x", "Delete report (asks first)"},
		{"r", "Refresh list"},
	}))

	sections = append(sections, m.renderSection("Report Detail", []keyHelp{
		{"j / k", "Scroll"},
		{"r", "Reload"},
	}))

	sections = append(sections, m.renderScoresHelp())
	sections = append(sections, m.renderTiersHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderScoresHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Scores Explained"))
	lines = append(lines, "")

	scores := []struct {
		name analysis.ScoreName
		desc string
	}{
		{analysis.ScoreMetabolicRate, "Measured resting rate against the Mifflin-St Jeor prediction. 50 = as predicted."},
		{analysis.ScoreFatBurning, "Share of resting energy from fat, from the RER."},
		{analysis.ScoreLungUtil, "VE/VO2: litres breathed per litre of oxygen used. Lower is better."},
		{analysis.ScoreHRV, "Variation of heart rate during the test. A moderate CV scores best."},
		{analysis.ScoreSympParasym, "Resting HR, HRV and RER combined into a stress balance."},
		{analysis.ScoreVentilationEff, "VE/VCO2: litres breathed per litre of CO2 cleared. Lower is better."},
		{analysis.ScoreBreathingCoord, "Steadiness of RER, VO2/VCO2 coupling and heart rate."},
	}

	for _, s := range scores {
		lines = append(lines, "  "+helpKeyStyle.Render(analysis.ScoreLabel(s.name)))
		lines = append(lines, "  "+helpDescStyle.Render(s.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTiersHelp() string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Data Sources"))

	tiers := []struct {
		tier analysis.Tier
		desc string
	}{
		{analysis.TierMeasured, "read directly from the report"},
		{analysis.TierCalculated, "derived from related readings or a chart"},
		{analysis.TierEstimated, "estimated from age, sex, size and activity"},
		{analysis.TierTypical, "typical value, no usable data"},
	}

	for _, t := range tiers {
		lines = append(lines, "  "+tierStyle(string(t.tier)).Render(string(t.tier))+" "+helpDescStyle.Render(t.desc))
	}

	return strings.Join(lines, "\n")
}
