package analysis

import "math"

// Fallback scores returned by formulas that lack enough data
const (
	NeutralMetabolicRateScore  = 50
	DefaultHRVScore            = 65
	DefaultBreathingCoordScore = 65
	DefaultSympParasymScore    = 60
)

// minSamples is the shortest series a formula will score
const minSamples = 5

// MetabolicRateScore maps measured/predicted RMR to a score.
// Ratio 1.0 (average) scores 50, ratio 2.0 caps at 100.
func MetabolicRateScore(measured, predicted float64) int {
	ratio, ok := RMRRatio(measured, predicted)
	if !ok {
		return NeutralMetabolicRateScore
	}
	return toScore(ratio * 50)
}

// FatPercent returns the share of resting energy from fat, linear between
// RER 0.70 (100% fat) and 1.00 (0% fat)
func FatPercent(rer float64) float64 {
	return clamp((1.00-rer)/0.30, 0, 1) * 100
}

// FatBurningScore scores fat oxidation with a 10% bonus, capped at 100
func FatBurningScore(rer float64) int {
	return toScore(FatPercent(rer) * 1.1)
}

// FuelMixFromRER splits resting fuel use into fat and carbohydrate
func FuelMixFromRER(rer float64) FuelMix {
	fat := toScore(FatPercent(rer))
	return FuelMix{FatPercent: fat, CarbPercent: 100 - fat}
}

// LungUtilScore scores the ventilatory equivalent for O2.
// Lower VE/VO2 means more efficient oxygen extraction.
func LungUtilScore(veVO2 float64) int {
	var score float64
	switch {
	case veVO2 <= 20:
		score = 100
	case veVO2 <= 25:
		score = lerp(veVO2, 20, 25, 100, 75)
	case veVO2 <= 30:
		score = lerp(veVO2, 25, 30, 75, 50)
	case veVO2 <= 40:
		score = lerp(veVO2, 30, 40, 50, 25)
	case veVO2 <= 50:
		score = lerp(veVO2, 40, 50, 25, 0)
	default:
		score = 0
	}
	return toScore(score)
}

// VentilationEffScore scores the ventilatory equivalent for CO2.
// Around 34 is considered below average clinically.
func VentilationEffScore(veVCO2 float64) int {
	if veVCO2 <= 25 {
		return 100
	}
	return toScore(100 - (veVCO2-25)*3.7)
}

// HRVScore scores heart-rate variability from the coefficient of variation
// of the HR samples. A CV between 3% and 8% is healthiest, peaking at 5.5%.
// Returns DefaultHRVScore and false with fewer than five samples.
func HRVScore(heartRates []float64) (int, bool) {
	if len(heartRates) < minSamples {
		return DefaultHRVScore, false
	}
	return hrvScoreFromCV(coefficientOfVariation(heartRates)), true
}

func hrvScoreFromCV(cv float64) int {
	var score float64
	switch {
	case cv < 3:
		score = 50 + 11.67*cv
	case cv <= 8:
		score = 100 - math.Abs(cv-5.5)*6
	case cv <= 15:
		score = lerp(cv, 8, 15, 85, 20)
	default:
		score = 20
	}
	return toScore(score)
}

// BreathingCoordScore averages whichever coordination sub-scores have
// enough data: RER stability, VO2/VCO2 correlation and HR stability.
// Returns DefaultBreathingCoordScore and false when none can be computed.
func BreathingCoordScore(rerSeries, vo2Series, vco2Series, heartRates []float64) (int, bool) {
	subs := breathingSubScores(rerSeries, vo2Series, vco2Series, heartRates)
	if len(subs) == 0 {
		return DefaultBreathingCoordScore, false
	}
	var total float64
	for _, s := range subs {
		total += s.score
	}
	return toScore(total / float64(len(subs))), true
}

type subScore struct {
	name  string
	input float64
	score float64
}

func breathingSubScores(rerSeries, vo2Series, vco2Series, heartRates []float64) []subScore {
	var subs []subScore

	if len(rerSeries) >= minSamples {
		cv := coefficientOfVariation(rerSeries)
		subs = append(subs, subScore{"rer_cv", cv, bandScore(cv, 5, 20, 100, 30)})
	}

	if len(vo2Series) >= minSamples && len(vo2Series) == len(vco2Series) {
		if r, ok := pearson(vo2Series, vco2Series); ok {
			subs = append(subs, subScore{"vo2_vco2_r", r, bandScore(r, 0.95, 0.5, 100, 30)})
		}
	}

	if len(heartRates) >= minSamples {
		sd := stdDev(heartRates)
		subs = append(subs, subScore{"hr_std", sd, bandScore(sd, 3, 10, 100, 40)})
	}

	return subs
}

// SympParasymScore estimates autonomic balance from resting HR, the HRV
// score and mean RER. Any input may be nil; the available components are
// averaged uniformly. Returns DefaultSympParasymScore and false when all
// inputs are nil.
func SympParasymScore(meanHR *float64, hrvScore *int, meanRER *float64) (int, bool) {
	var total float64
	var count int

	if meanHR != nil {
		total += heartRateBandScore(*meanHR)
		count++
	}
	if hrvScore != nil {
		total += float64(*hrvScore)
		count++
	}
	if meanRER != nil {
		total += rerBandScore(*meanRER)
		count++
	}

	if count == 0 {
		return DefaultSympParasymScore, false
	}
	return toScore(total / float64(count)), true
}

// heartRateBandScore rewards a low resting HR
func heartRateBandScore(hr float64) float64 {
	switch {
	case hr <= 50:
		return 95
	case hr <= 60:
		return lerp(hr, 50, 60, 95, 85)
	case hr <= 70:
		return lerp(hr, 60, 70, 85, 70)
	case hr <= 80:
		return lerp(hr, 70, 80, 70, 50)
	case hr <= 90:
		return lerp(hr, 80, 90, 50, 20)
	default:
		return 20
	}
}

// rerBandScore rewards fat-dominant resting metabolism
func rerBandScore(rer float64) float64 {
	switch {
	case rer <= 0.75:
		return 90
	case rer <= 0.85:
		return lerp(rer, 0.75, 0.85, 90, 70)
	default:
		return math.Max(40, 70-(rer-0.85)*300)
	}
}

// bandScore maps x linearly from (best -> hi) to (worst -> lo), holding the
// ends flat. best may be above or below worst.
func bandScore(x, best, worst, hi, lo float64) float64 {
	if best < worst {
		if x <= best {
			return hi
		}
		if x >= worst {
			return lo
		}
	} else {
		if x >= best {
			return hi
		}
		if x <= worst {
			return lo
		}
	}
	return lerp(x, best, worst, hi, lo)
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toScore clamps to [0, 100] and truncates. The epsilon keeps values like
// 52.99999999 from float noise at 53.
func toScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(clamp(v, 0, 100) + 1e-9))
}
