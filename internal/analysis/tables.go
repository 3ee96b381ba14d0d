package analysis

// Range is an inclusive [Min, Max] interval
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// AgeDerate scales the RMR estimate for patients older than OverAge
type AgeDerate struct {
	OverAge int
	Factor  float64
}

// Tables holds every empirically chosen constant the scoring engine uses.
// Formula logic reads these instead of inline literals so they can be
// overridden from configuration.
type Tables struct {
	// Estimated RMR = predicted RMR * activity factor * age derate
	ActivityFactors map[ActivityLevel]float64
	DefaultActivity ActivityLevel
	AgeDerates      []AgeDerate // checked in order, first match wins

	// Extracted RMR is trusted only when Low < extracted/predicted < High
	RMRRatioLow  float64
	RMRRatioHigh float64

	// Resting RER values accepted verbatim
	RERBand Range

	// Last-resort values
	TypicalRER                 float64
	TypicalLungUtilScore       float64
	TypicalVEVCO2              float64
	DefaultHRVScore            int
	DefaultBreathingCoordScore int
	DefaultSympParasymScore    int

	// Plausible physiological ranges; values outside are rejected
	HeartRateRange Range
	VO2Range       Range
	VCO2Range      Range
	VERange        Range
	VEVO2Range     Range
	VEVCO2Range    Range
	RERSeriesRange Range
}

// DefaultTables returns the calibrated defaults. Each call returns a fresh
// copy, so callers may modify it freely.
func DefaultTables() Tables {
	return Tables{
		ActivityFactors: map[ActivityLevel]float64{
			ActivitySedentary:  0.90,
			ActivityLight:      0.93,
			ActivityModerate:   0.92,
			ActivityActive:     0.98,
			ActivityVeryActive: 1.02,
		},
		DefaultActivity: ActivityModerate,
		AgeDerates: []AgeDerate{
			{OverAge: 60, Factor: 0.98},
			{OverAge: 50, Factor: 0.99},
		},

		RMRRatioLow:  0.5,
		RMRRatioHigh: 1.5,

		RERBand: Range{Min: 0.70, Max: 1.00},

		TypicalRER:                 0.84, // typical for moderate exercisers
		TypicalLungUtilScore:       85,   // typical for a resting test
		TypicalVEVCO2:              32,
		DefaultHRVScore:            DefaultHRVScore,
		DefaultBreathingCoordScore: DefaultBreathingCoordScore,
		DefaultSympParasymScore:    DefaultSympParasymScore,

		HeartRateRange: Range{Min: 30, Max: 220},
		VO2Range:       Range{Min: 100, Max: 8000},   // ml/min
		VCO2Range:      Range{Min: 80, Max: 8000},    // ml/min
		VERange:        Range{Min: 3, Max: 250},      // L/min
		VEVO2Range:     Range{Min: 10, Max: 80},
		VEVCO2Range:    Range{Min: 10, Max: 80},
		RERSeriesRange: Range{Min: 0.5, Max: 1.5}, // exertion may push RER past 1.0
	}
}

// ActivityFactor returns the RMR multiplier for a level and the level
// actually used. Unknown or empty levels use DefaultActivity.
func (t Tables) ActivityFactor(level ActivityLevel) (float64, ActivityLevel) {
	if f, ok := t.ActivityFactors[level]; ok {
		return f, level
	}
	if f, ok := t.ActivityFactors[t.DefaultActivity]; ok {
		return f, t.DefaultActivity
	}
	return 1.0, t.DefaultActivity
}

// AgeDerate returns the age-based RMR multiplier
func (t Tables) AgeDerate(age int) float64 {
	for _, d := range t.AgeDerates {
		if age > d.OverAge {
			return d.Factor
		}
	}
	return 1.0
}
