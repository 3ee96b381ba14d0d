package analysis

// ScoreLabel returns the display name of a score
func ScoreLabel(name ScoreName) string {
	switch name {
	case ScoreMetabolicRate:
		return "Metabolic Rate"
	case ScoreFatBurning:
		return "Fat Burning"
	case ScoreLungUtil:
		return "Lung Utilization"
	case ScoreHRV:
		return "Heart Rate Variability"
	case ScoreSympParasym:
		return "Symp/Parasym Balance"
	case ScoreVentilationEff:
		return "Ventilation Efficiency"
	case ScoreBreathingCoord:
		return "Breathing Coordination"
	default:
		return string(name)
	}
}

// ScoreRating returns a human-readable band for a 0-100 score
func ScoreRating(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Average"
	case score >= 35:
		return "Below average"
	default:
		return "Needs attention"
	}
}

// FuelDescription describes the resting fuel mix
func FuelDescription(f FuelMix) string {
	switch {
	case f.FatPercent >= 70:
		return "Strongly fat adapted"
	case f.FatPercent >= 50:
		return "Fat dominant"
	case f.FatPercent >= 30:
		return "Mixed fuel"
	default:
		return "Carbohydrate dominant"
	}
}
