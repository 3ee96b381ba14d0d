package analysis

// PredictedRMR returns the Mifflin-St Jeor resting metabolic rate (kcal/day)
// for a resolved profile:
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
func PredictedRMR(p PatientProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if ParseGender(string(p.Gender)) == GenderFemale {
		return base - 161
	}
	return base + 5
}

// RMRRatio returns measured/predicted, or false when predicted is not positive
func RMRRatio(measured, predicted float64) (float64, bool) {
	if predicted <= 0 {
		return 0, false
	}
	return measured / predicted, true
}
