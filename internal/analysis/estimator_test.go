package analysis

import (
	"math"
	"testing"
)

func TestActivityFactor(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		level        ActivityLevel
		expected     float64
		expectedUsed ActivityLevel
	}{
		{ActivitySedentary, 0.90, ActivitySedentary},
		{ActivityLight, 0.93, ActivityLight},
		{ActivityModerate, 0.92, ActivityModerate},
		{ActivityActive, 0.98, ActivityActive},
		{ActivityVeryActive, 1.02, ActivityVeryActive},
		{"", 0.92, ActivityModerate},
		{"unknown", 0.92, ActivityModerate},
	}

	for _, tt := range tests {
		got, used := tables.ActivityFactor(tt.level)
		if got != tt.expected || used != tt.expectedUsed {
			t.Errorf("ActivityFactor(%q) = (%v, %q), want (%v, %q)", tt.level, got, used, tt.expected, tt.expectedUsed)
		}
	}
}

func TestAgeDerate(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		age      int
		expected float64
	}{
		{30, 1.0},
		{50, 1.0},
		{51, 0.99},
		{60, 0.99},
		{61, 0.98},
		{90, 0.98},
	}

	for _, tt := range tests {
		if got := tables.AgeDerate(tt.age); got != tt.expected {
			t.Errorf("AgeDerate(%d) = %v, want %v", tt.age, got, tt.expected)
		}
	}
}

func TestEstimateRMR(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name     string
		profile  PatientProfile
		expected float64
	}{
		{"moderate default", profile1700, 1700 * 0.92},
		{"sedentary", PatientProfile{Age: 31, WeightKg: 80, HeightCm: 168, ActivityLevel: ActivitySedentary}, 1700 * 0.90},
		{
			name:     "over 60 derated",
			profile:  PatientProfile{Age: 65, WeightKg: 80, HeightCm: 168, ActivityLevel: ActivityVeryActive},
			expected: (1700 - 5*34) * 1.02 * 0.98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRMR(tt.profile, tables)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("EstimateRMR() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEstimateRER(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name     string
		ratio    float64
		age      int
		expected float64
	}{
		{"average ratio, middle age", 1.0, 45, 0.85},
		{"slow metabolism", 0.92, 45, 0.87},
		{"young adjustment", 1.0, 25, 0.84},
		{"thirties adjustment", 1.0, 35, 0.845},
		{"fast metabolism", 1.3, 50, 0.775},
		{"clamped low", 2.0, 45, 0.70},
		{"clamped high", 0.0, 45, 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRER(tt.ratio, tt.age, tables)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("EstimateRER(%v, %d) = %v, want %v", tt.ratio, tt.age, got, tt.expected)
			}
		})
	}
}

func TestEstimateRERMonotonic(t *testing.T) {
	tables := DefaultTables()
	prev := EstimateRER(0.5, 45, tables)
	for ratio := 0.5; ratio <= 1.5; ratio += 0.01 {
		got := EstimateRER(ratio, 45, tables)
		if got > prev {
			t.Fatalf("EstimateRER increased at ratio %.2f", ratio)
		}
		prev = got
	}
}

func TestTypicalFallbacks(t *testing.T) {
	tables := DefaultTables()
	if got := TypicalLungUtil(tables); got != 85 {
		t.Errorf("TypicalLungUtil() = %d, want 85", got)
	}
	if got := TypicalVentilationEff(tables); got != 74 {
		t.Errorf("TypicalVentilationEff() = %d, want 74", got)
	}
}

func TestScoreRating(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{65, "Good"},
		{50, "Average"},
		{35, "Below average"},
		{0, "Needs attention"},
	}

	for _, tt := range tests {
		if got := ScoreRating(tt.score); got != tt.expected {
			t.Errorf("ScoreRating(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}
