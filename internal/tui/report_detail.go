package tui

import (
	"context"
	"fmt"
	"strings"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ReportDetailModel is the report detail screen model
type ReportDetailModel struct {
	queryService *service.QueryService
	reportID     string
	detail       *service.ReportDetail
	viewport     viewport.Model
	chartWidth   int
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewReportDetailModel creates a new report detail model
func NewReportDetailModel(qs *service.QueryService, reportID string, width, height, chartWidth int) ReportDetailModel {
	m := ReportDetailModel{
		queryService: qs,
		reportID:     reportID,
		chartWidth:   chartWidth,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the report detail screen
func (m ReportDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type reportDetailLoadedMsg struct {
	detail *service.ReportDetail
	err    error
}

func (m ReportDetailModel) loadDetail() tea.Msg {
	detail, err := m.queryService.GetReportDetail(context.Background(), m.reportID)
	return reportDetailLoadedMsg{detail: detail, err: err}
}

// Update handles messages
func (m ReportDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportDetailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.detail = msg.detail
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.detail != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadDetail
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report detail screen
func (m ReportDetailModel) View() string {
	if m.loading {
		return "\n  Loading report..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ReportDetailModel) renderContent() string {
	if m.detail == nil {
		return "No data"
	}
	return RenderReport(m.detail, m.chartWidth)
}

// RenderReport renders a full report. The CLI prints the same text.
func RenderReport(d *service.ReportDetail, chartWidth int) string {
	sections := []string{
		renderReportHeader(d),
		renderScores(d),
		renderFuel(d),
		renderEnergy(d),
		renderProvenance(d),
	}

	if len(d.Report.Notes) > 0 {
		sections = append(sections, renderNotes(d))
	}

	if len(d.HRData) > 5 {
		sections = append(sections, renderHRChart(d.HRData, chartWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderReportHeader(d *service.ReportDetail) string {
	r := d.Report
	title := cardTitleStyle.Render(r.Name)

	date := "not saved"
	if !r.ScoredAt.IsZero() {
		date = r.ScoredAt.Local().Format("Monday, January 2, 2006 at 3:04 PM")
	}
	subtitle := lipgloss.NewStyle().Foreground(mutedColor).Render(date)

	p := r.Profile
	profile := fmt.Sprintf("%s, %d yrs  •  %.1f kg  •  %.0f cm", p.Gender, p.Age, p.WeightKg, p.HeightCm)
	if p.ActivityLevel != "" {
		profile += "  •  " + strings.ReplaceAll(string(p.ActivityLevel), "_", " ")
	}
	profileLine := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(profile)

	quality := qualityStyle(r.DataQuality).Render(fmt.Sprintf("Data: %s (%d of %d scores from test data)",
		r.DataQuality, d.FromData, d.FromData+d.Fallbacks))

	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, profileLine, quality, "")
}

func renderScores(d *service.ReportDetail) string {
	var lines []string

	lines = append(lines, sectionStyle.Render(fmt.Sprintf("Scores (overall %d)", d.Overall)))

	for _, s := range d.Scores {
		bar := RenderProgressBar(float64(s.Score)/100, 25)
		line := fmt.Sprintf("  %-24s %s %3d  %-16s %s",
			s.Label, bar, s.Score, s.Rating, tierStyle(s.Tier).Render(s.Tier))
		lines = append(lines, line)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderFuel(d *service.ReportDetail) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Resting Fuel Mix"))

	const width = 40
	fat := d.Report.Fuel.FatPercent * width / 100
	bar := fatStyle.Render(strings.Repeat("█", fat)) + carbStyle.Render(strings.Repeat("█", width-fat))
	lines = append(lines, "  "+bar)
	lines = append(lines, fmt.Sprintf("  %s  (%s)", d.FuelText, d.FuelLabel))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderEnergy(d *service.ReportDetail) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Energy"))
	lines = append(lines, "  "+RenderMetric("Resting rate", d.RMR, ""))
	lines = append(lines, "  "+RenderMetric("Predicted (MSJ)", d.PredictedRMR, rmrTrend(d.Report.RMR, d.Report.PredictedRMR)))
	lines = append(lines, "  "+RenderMetric("RER", fmt.Sprintf("%.2f", d.Report.RER), ""))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// rmrTrend shows measured against predicted, "+4%" or "-9%"
func rmrTrend(measured, predicted float64) string {
	if predicted <= 0 {
		return ""
	}
	pct := (measured/predicted - 1) * 100
	return fmt.Sprintf("%+.0f%%", pct)
}

func renderProvenance(d *service.ReportDetail) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("How Each Score Was Derived"))

	for _, s := range d.Scores {
		lines = append(lines, "  "+helpKeyStyle.Render(s.Label)+" "+tierStyle(s.Tier).Render("["+s.Tier+"]"))
		if s.Detail != "" {
			lines = append(lines, "    "+helpDescStyle.Render(s.Detail))
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderNotes(d *service.ReportDetail) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Rejected Readings"))
	for _, n := range d.Report.Notes {
		lines = append(lines, "  "+warningStyle.Render("! "+n))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderHRChart(hr []float64, width int) string {
	var lines []string

	lines = append(lines, sectionStyle.Render("Heart Rate During Test (bpm)"))

	data := hr
	if len(data) > width {
		data = downsample(data, width)
	}
	data = trimTrailingZeros(data)

	if len(data) > 2 {
		chart := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(width),
		)
		lines = append(lines, chart)
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// downsample averages data into targetLen buckets, skipping zero samples
func downsample(data []float64, targetLen int) []float64 {
	if len(data) <= targetLen || targetLen <= 0 {
		return data
	}

	result := make([]float64, targetLen)
	ratio := float64(len(data)) / float64(targetLen)

	for i := 0; i < targetLen; i++ {
		start := int(float64(i) * ratio)
		end := int(float64(i+1) * ratio)
		if end > len(data) {
			end = len(data)
		}

		sum := 0.0
		count := 0
		for j := start; j < end; j++ {
			if data[j] > 0 {
				sum += data[j]
				count++
			}
		}
		if count > 0 {
			result[i] = sum / float64(count)
		}
	}

	return result
}

func trimTrailingZeros(data []float64) []float64 {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end]
}

func tierStyle(tier string) lipgloss.Style {
	switch analysis.Tier(tier) {
	case analysis.TierMeasured:
		return successStyle
	case analysis.TierCalculated:
		return calculatedStyle
	case analysis.TierEstimated:
		return warningStyle
	default:
		return trendFlatStyle
	}
}

func qualityStyle(quality string) lipgloss.Style {
	switch quality {
	case analysis.QualityMeasured:
		return successStyle
	case analysis.QualityPartial:
		return warningStyle
	default:
		return errorStyle
	}
}
