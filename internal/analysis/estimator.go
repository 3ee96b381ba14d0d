package analysis

import "fmt"

// EstimateRMR synthesizes a resting metabolic rate from demographics alone:
// predicted RMR scaled by the activity factor and the age derate.
func EstimateRMR(p PatientProfile, t Tables) float64 {
	factor, _ := t.ActivityFactor(p.ActivityLevel)
	return PredictedRMR(p) * factor * t.AgeDerate(p.Age)
}

// estimateRMRDetail explains how EstimateRMR arrived at its value
func estimateRMRDetail(p PatientProfile, t Tables) string {
	factor, level := t.ActivityFactor(p.ActivityLevel)
	detail := fmt.Sprintf("estimated RMR = predicted %.0f x %s activity factor %.2f",
		PredictedRMR(p), level, factor)
	if derate := t.AgeDerate(p.Age); derate != 1.0 {
		detail += fmt.Sprintf(" x age derate %.2f", derate)
	}
	return detail
}

// EstimateRER derives a resting RER from the RMR ratio when no usable
// measurement exists. A higher ratio gives a lower, more fat-dominant RER;
// younger patients are nudged slightly lower. The result stays inside the
// resting RER band.
func EstimateRER(rmrRatio float64, age int, t Tables) float64 {
	rer := 0.85 - (rmrRatio-1.0)*0.25
	switch {
	case age < 30:
		rer -= 0.01
	case age < 40:
		rer -= 0.005
	}
	return clamp(rer, t.RERBand.Min, t.RERBand.Max)
}

// TypicalLungUtil returns the lung utilization score used when no VE/VO2
// reading exists at all
func TypicalLungUtil(t Tables) int {
	return toScore(t.TypicalLungUtilScore)
}

// TypicalVentilationEff feeds the typical VE/VCO2 through the formula
func TypicalVentilationEff(t Tables) int {
	return VentilationEffScore(t.TypicalVEVCO2)
}
