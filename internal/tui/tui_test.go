package tui

import (
	"strings"
	"testing"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDownsample(t *testing.T) {
	data := []float64{60, 62, 0, 64, 66, 68}

	got := downsample(data, 3)
	want := []float64{61, 64, 67}
	if len(got) != len(want) {
		t.Fatalf("downsample() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("downsample()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := downsample(data, 10); len(got) != len(data) {
		t.Errorf("downsample() should not grow data, got len %d", len(got))
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	tests := []struct {
		in       []float64
		expected int
	}{
		{[]float64{1, 2, 0, 0}, 2},
		{[]float64{0, 1}, 2},
		{[]float64{0, 0}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := trimTrailingZeros(tt.in); len(got) != tt.expected {
			t.Errorf("trimTrailingZeros(%v) len = %d, want %d", tt.in, len(got), tt.expected)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a rather long report name", 10, "a rathe..."},
		{"Müller-Lüdenscheidt", 8, "Mülle..."},
	}

	for _, tt := range tests {
		if got := truncateName(tt.in, tt.max); got != tt.expected {
			t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.5, 20},
		{-0.2, 0},
	}

	for _, tt := range tests {
		bar := RenderProgressBar(tt.percent, 20)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("RenderProgressBar(%v) filled = %d, want %d", tt.percent, got, tt.filled)
		}
		if got := strings.Count(bar, "░"); got != 20-tt.filled {
			t.Errorf("RenderProgressBar(%v) empty = %d, want %d", tt.percent, got, 20-tt.filled)
		}
	}
}

func TestRenderReport(t *testing.T) {
	profile := analysis.PatientProfile{Age: 50, Gender: analysis.GenderMale, WeightKg: 90, HeightCm: 182}
	raw := analysis.RawMeasurements{
		RMR:             analysis.Float(4000), // rejected as implausible
		HeartRateSeries: []float64{70, 72, 71, 75, 73, 70, 69, 74},
	}

	res, err := analysis.NewScorer(analysis.DefaultTables(), nil).Compute(profile, raw)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	scored := &service.ScoredReport{Provenance: res.Provenance}
	scored.Report.Name = "test patient"
	scored.Report.Profile = profile
	scored.Report.Scores = res.Scores
	scored.Report.Fuel = res.Fuel
	scored.Report.RMR = res.RMR
	scored.Report.PredictedRMR = res.PredictedRMR
	scored.Report.RER = res.RER
	scored.Report.DataQuality = res.Provenance.DataQuality()
	scored.Report.Notes = res.Provenance.Notes
	scored.Report.Measurements = raw

	out := RenderReport(service.DetailFromScored(scored), 40)

	for _, want := range []string{
		"test patient",
		"not saved",
		analysis.ScoreLabel(analysis.ScoreMetabolicRate),
		analysis.ScoreLabel(analysis.ScoreBreathingCoord),
		"Resting Fuel Mix",
		"Rejected Readings",
		"Heart Rate During Test",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport() missing %q", want)
		}
	}
}

func TestAppNavigation(t *testing.T) {
	app := NewApp(nil, Options{})

	if app.opts.PageSize != service.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", app.opts.PageSize, service.DefaultPageSize)
	}

	app.Update(OpenReportMsg{ReportID: "abc"})
	if app.screen != ScreenDetail {
		t.Fatalf("screen = %v, want detail", app.screen)
	}
	if app.detail.reportID != "abc" {
		t.Errorf("detail reportID = %q, want %q", app.detail.reportID, "abc")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if app.screen != ScreenHelp {
		t.Fatalf("screen = %v, want help", app.screen)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.screen != ScreenDetail {
		t.Fatalf("esc from help should return to detail, got %v", app.screen)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.screen != ScreenReports {
		t.Errorf("esc from detail should return to reports, got %v", app.screen)
	}
}

func TestReportsDeleteConfirmation(t *testing.T) {
	m := NewReportsModel(nil, 10)
	model, _ := m.Update(reportsLoadedMsg{
		reports: []service.ReportSummary{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}},
		total:   2,
	})
	m = model.(ReportsModel)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = model.(ReportsModel)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = model.(ReportsModel)
	if !m.confirming {
		t.Fatal("x should ask for confirmation")
	}
	if !strings.Contains(m.View(), `Delete "second"?`) {
		t.Error("confirmation prompt should name the report")
	}

	// Anything but y cancels
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = model.(ReportsModel)
	if m.confirming || cmd != nil {
		t.Error("n should cancel without a command")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = model.(ReportsModel)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Error("y should return the delete command")
	}
}
