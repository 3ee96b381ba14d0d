package analysis

// RawMeasurements is whatever the PDF extractor managed to read.
// Every field is optional; nil, zero, NaN and Inf all mean "absent".
type RawMeasurements struct {
	RMR       *float64 `json:"rmr_kcal,omitempty"`   // kcal/day
	RER       *float64 `json:"rer,omitempty"`        // dimensionless
	VO2       *float64 `json:"vo2_ml_min,omitempty"` // ml/min
	VCO2      *float64 `json:"vco2_ml_min,omitempty"`
	VE        *float64 `json:"ve_l_min,omitempty"` // L/min
	HeartRate *float64 `json:"heart_rate,omitempty"`
	VEVO2     *float64 `json:"ve_vo2,omitempty"`
	VEVCO2    *float64 `json:"ve_vco2,omitempty"`

	// Read off a chart axis rather than a table cell
	VEVO2Chart  *float64 `json:"ve_vo2_chart,omitempty"`
	VEVCO2Chart *float64 `json:"ve_vco2_chart,omitempty"`

	HeartRateSeries []float64 `json:"heart_rate_series,omitempty"` // bpm
	VO2Series       []float64 `json:"vo2_series,omitempty"`
	VCO2Series      []float64 `json:"vco2_series,omitempty"`
	RERSeries       []float64 `json:"rer_series,omitempty"`
}

// Float returns a pointer to v, for building RawMeasurements literals
func Float(v float64) *float64 {
	return &v
}

// value unwraps an optional measurement
func value(p *float64) (float64, bool) {
	if p == nil || *p == 0 || !isFinite(*p) {
		return 0, false
	}
	return *p, true
}

// CoreScoreSet holds the seven report scores, each in [0, 100]
type CoreScoreSet struct {
	MetabolicRate  int `json:"metabolic_rate"`
	FatBurning     int `json:"fat_burning"`
	LungUtil       int `json:"lung_util"`
	HRV            int `json:"hrv"`
	SympParasym    int `json:"symp_parasym"`
	VentilationEff int `json:"ventilation_eff"`
	BreathingCoord int `json:"breathing_coord"`
}

// Get returns the score with the given name
func (s CoreScoreSet) Get(name ScoreName) int {
	switch name {
	case ScoreMetabolicRate:
		return s.MetabolicRate
	case ScoreFatBurning:
		return s.FatBurning
	case ScoreLungUtil:
		return s.LungUtil
	case ScoreHRV:
		return s.HRV
	case ScoreSympParasym:
		return s.SympParasym
	case ScoreVentilationEff:
		return s.VentilationEff
	case ScoreBreathingCoord:
		return s.BreathingCoord
	}
	return 0
}

// FuelMix is the resting substrate split; FatPercent + CarbPercent == 100
type FuelMix struct {
	FatPercent  int `json:"fat_percent"`
	CarbPercent int `json:"carb_percent"`
}

// Result is the full output of one scoring run
type Result struct {
	Scores     CoreScoreSet `json:"scores"`
	Fuel       FuelMix      `json:"fuel"`
	Provenance Provenance   `json:"provenance"`

	// Reconciled inputs, for display
	PredictedRMR float64 `json:"predicted_rmr"`
	RMR          float64 `json:"rmr"`
	RER          float64 `json:"rer"`
}

// Field names a scalar measurement, independent of how the extractor labels it
type Field string

const (
	FieldRMR       Field = "rmr"
	FieldRER       Field = "rer"
	FieldVO2       Field = "vo2"
	FieldVCO2      Field = "vco2"
	FieldVE        Field = "ve"
	FieldHeartRate Field = "heart_rate"
	FieldVEVO2     Field = "ve_vo2"
	FieldVEVCO2    Field = "ve_vco2"
)

// Set stores a scalar reading. Unknown fields are ignored.
func (m *RawMeasurements) Set(f Field, v float64) {
	switch f {
	case FieldRMR:
		m.RMR = Float(v)
	case FieldRER:
		m.RER = Float(v)
	case FieldVO2:
		m.VO2 = Float(v)
	case FieldVCO2:
		m.VCO2 = Float(v)
	case FieldVE:
		m.VE = Float(v)
	case FieldHeartRate:
		m.HeartRate = Float(v)
	case FieldVEVO2:
		m.VEVO2 = Float(v)
	case FieldVEVCO2:
		m.VEVCO2 = Float(v)
	}
}
