package analysis

import (
	"math"
	"testing"
)

func TestMetabolicRateScore(t *testing.T) {
	tests := []struct {
		name      string
		measured  float64
		predicted float64
		expected  int
	}{
		{"average metabolism", 1700, 1700, 50},
		{"double predicted caps at 100", 3400, 1700, 100},
		{"above cap still 100", 5000, 1700, 100},
		{"slow metabolism", 1564, 1700, 46},
		{"zero predicted is neutral", 1700, 0, 50},
		{"negative predicted is neutral", 1700, -20, 50},
		{"zero measured", 0, 1700, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetabolicRateScore(tt.measured, tt.predicted)
			if got != tt.expected {
				t.Errorf("MetabolicRateScore(%v, %v) = %d, want %d", tt.measured, tt.predicted, got, tt.expected)
			}
		})
	}
}

func TestFatBurningScore(t *testing.T) {
	tests := []struct {
		rer      float64
		expected int
	}{
		{0.65, 100},
		{0.70, 100}, // 100% fat * 1.1 clamped
		{0.841, 58}, // 53% * 1.1
		{0.85, 55},
		{1.00, 0},
		{1.10, 0},
	}

	for _, tt := range tests {
		got := FatBurningScore(tt.rer)
		if got != tt.expected {
			t.Errorf("FatBurningScore(%v) = %d, want %d", tt.rer, got, tt.expected)
		}
	}
}

func TestFatBurningMonotonic(t *testing.T) {
	prev := FatBurningScore(0.70)
	for rer := 0.70; rer <= 1.0; rer += 0.005 {
		got := FatBurningScore(rer)
		if got > prev {
			t.Fatalf("FatBurningScore increased at RER %.3f: %d > %d", rer, got, prev)
		}
		prev = got
	}
}

func TestFuelMixFromRER(t *testing.T) {
	tests := []struct {
		rer  float64
		fat  int
		carb int
	}{
		{0.60, 100, 0},
		{0.70, 100, 0},
		{0.841, 53, 47},
		{0.85, 50, 50},
		{1.00, 0, 100},
		{1.20, 0, 100},
	}

	for _, tt := range tests {
		got := FuelMixFromRER(tt.rer)
		if got.FatPercent != tt.fat || got.CarbPercent != tt.carb {
			t.Errorf("FuelMixFromRER(%v) = %+v, want fat %d carb %d", tt.rer, got, tt.fat, tt.carb)
		}
		if got.FatPercent+got.CarbPercent != 100 {
			t.Errorf("FuelMixFromRER(%v) sums to %d", tt.rer, got.FatPercent+got.CarbPercent)
		}
	}
}

func TestLungUtilScore(t *testing.T) {
	tests := []struct {
		veVO2    float64
		expected int
	}{
		{15, 100},
		{20, 100},
		{22.5, 87},
		{25, 75},
		{27.5, 62},
		{30, 50},
		{35, 37},
		{40, 25},
		{45, 12}, // 25 - (45-40)*2.5
		{50, 0},
		{65, 0},
	}

	for _, tt := range tests {
		got := LungUtilScore(tt.veVO2)
		if got != tt.expected {
			t.Errorf("LungUtilScore(%v) = %d, want %d", tt.veVO2, got, tt.expected)
		}
	}
}

func TestLungUtilMonotonic(t *testing.T) {
	prev := LungUtilScore(10)
	for v := 10.0; v <= 60; v += 0.25 {
		got := LungUtilScore(v)
		if got > prev {
			t.Fatalf("LungUtilScore increased at %.2f: %d > %d", v, got, prev)
		}
		prev = got
	}
}

func TestVentilationEffScore(t *testing.T) {
	tests := []struct {
		veVCO2   float64
		expected int
	}{
		{20, 100},
		{25, 100},
		{32, 74}, // 100 - 7*3.7
		{34, 66},
		{40, 44},
		{52, 0},
	}

	for _, tt := range tests {
		got := VentilationEffScore(tt.veVCO2)
		if got != tt.expected {
			t.Errorf("VentilationEffScore(%v) = %d, want %d", tt.veVCO2, got, tt.expected)
		}
	}
}

func TestVentilationEffMonotonic(t *testing.T) {
	prev := VentilationEffScore(15)
	for v := 15.0; v <= 60; v += 0.25 {
		got := VentilationEffScore(v)
		if got > prev {
			t.Fatalf("VentilationEffScore increased at %.2f: %d > %d", v, got, prev)
		}
		prev = got
	}
}

func TestHRVScoreFromCV(t *testing.T) {
	tests := []struct {
		cv       float64
		expected int
	}{
		{0, 50},
		{1, 61},
		{3, 85},
		{5.5, 100},
		{8, 85},
		{11.5, 52},
		{15, 20},
		{25, 20},
	}

	for _, tt := range tests {
		got := hrvScoreFromCV(tt.cv)
		if got != tt.expected {
			t.Errorf("hrvScoreFromCV(%v) = %d, want %d", tt.cv, got, tt.expected)
		}
	}
}

func TestHRVScore(t *testing.T) {
	t.Run("too few samples", func(t *testing.T) {
		got, ok := HRVScore([]float64{60, 61, 62, 63})
		if ok {
			t.Error("expected ok=false with 4 samples")
		}
		if got != DefaultHRVScore {
			t.Errorf("HRVScore = %d, want default %d", got, DefaultHRVScore)
		}
	})

	t.Run("low variability", func(t *testing.T) {
		// mean 60, population std sqrt(2), CV 2.36%
		got, ok := HRVScore([]float64{60, 62, 58, 61, 59})
		if !ok {
			t.Fatal("expected ok=true")
		}
		if got != 77 {
			t.Errorf("HRVScore = %d, want 77", got)
		}
	})

	t.Run("flat series", func(t *testing.T) {
		got, _ := HRVScore([]float64{70, 70, 70, 70, 70})
		if got != 50 {
			t.Errorf("HRVScore = %d, want 50", got)
		}
	})
}

func TestBreathingCoordScore(t *testing.T) {
	steadyRER := []float64{0.80, 0.80, 0.80, 0.80, 0.80}
	vo2 := []float64{300, 320, 340, 360, 380}
	vco2 := []float64{250, 266, 282, 298, 314}
	steadyHR := []float64{60, 62, 58, 61, 59}
	choppyHR := []float64{50, 70, 50, 70, 50, 70}

	tests := []struct {
		name     string
		rer      []float64
		vo2      []float64
		vco2     []float64
		hr       []float64
		expected int
		ok       bool
	}{
		{"no data", nil, nil, nil, nil, DefaultBreathingCoordScore, false},
		{"all steady", steadyRER, vo2, vco2, steadyHR, 100, true},
		{"only choppy HR", nil, nil, nil, choppyHR, 40, true},
		{"steady RER and choppy HR", steadyRER, nil, nil, choppyHR, 70, true},
		{"too short series ignored", steadyRER[:3], vo2[:3], vco2[:3], steadyHR[:4], DefaultBreathingCoordScore, false},
		{"mismatched gas series ignored", nil, vo2, vco2[:4], choppyHR, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BreathingCoordScore(tt.rer, tt.vo2, tt.vco2, tt.hr)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("BreathingCoordScore = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestBandScore(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		best     float64
		worst    float64
		expected float64
	}{
		{"CV at best", 5, 5, 20, 100},
		{"CV midway", 12.5, 5, 20, 65},
		{"CV past worst", 30, 5, 20, 30},
		{"correlation at best", 0.99, 0.95, 0.5, 100},
		{"correlation midway", 0.725, 0.95, 0.5, 65},
		{"correlation past worst", 0.1, 0.95, 0.5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bandScore(tt.x, tt.best, tt.worst, 100, 30)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("bandScore(%v) = %v, want %v", tt.x, got, tt.expected)
			}
		})
	}
}

func TestSympParasymScore(t *testing.T) {
	hr50 := 50.0
	hr65 := 65.0
	rer80 := 0.80
	rer100 := 1.00
	hrv70 := 70

	tests := []struct {
		name     string
		hr       *float64
		hrv      *int
		rer      *float64
		expected int
		ok       bool
	}{
		{"no data", nil, nil, nil, DefaultSympParasymScore, false},
		{"athletic resting HR only", &hr50, nil, nil, 95, true},
		{"all components", &hr65, &hrv70, &rer80, 75, true},
		{"high RER floors at 40", nil, nil, &rer100, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SympParasymScore(tt.hr, tt.hrv, tt.rer)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("SympParasymScore = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHeartRateBandScore(t *testing.T) {
	tests := []struct {
		hr       float64
		expected float64
	}{
		{45, 95},
		{50, 95},
		{55, 90},
		{60, 85},
		{70, 70},
		{80, 50},
		{90, 20},
		{110, 20},
	}

	for _, tt := range tests {
		got := heartRateBandScore(tt.hr)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("heartRateBandScore(%v) = %v, want %v", tt.hr, got, tt.expected)
		}
	}
}

func TestToScore(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{-5, 0},
		{0, 0},
		{52.99999999999, 53},
		{58.3, 58},
		{100, 100},
		{250, 100},
		{math.NaN(), 0},
		{math.Inf(1), 100},
	}

	for _, tt := range tests {
		got := toScore(tt.in)
		if got != tt.expected {
			t.Errorf("toScore(%v) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}
