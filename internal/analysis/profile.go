package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidProfile is returned when a patient profile cannot be scored
var ErrInvalidProfile = errors.New("invalid patient profile")

// Profile defaults substituted for missing fields
const (
	DefaultAge      = 35
	DefaultWeightKg = 77.0
	DefaultHeightCm = 180.0
	DefaultGender   = GenderMale
)

// Gender selects the Mifflin-St Jeor constant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalizes free text. Only an explicit female value maps to
// female; everything else, including empty input, is male.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "woman", "w":
		return GenderFemale
	default:
		return GenderMale
	}
}

// ActivityLevel is the assumed habitual activity used by the estimator
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists the known levels from least to most active
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// ParseActivityLevel normalizes free text ("Very Active", "very-active")
// Returns false for unknown levels
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, level := range ActivityLevels {
		if norm == string(level) {
			return level, true
		}
	}
	return "", false
}

// PatientProfile holds the demographics of the tested patient.
// Zero values mean "not extracted" and are replaced by Resolve.
type PatientProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
}

// Resolve substitutes defaults for missing fields and validates the rest.
// The returned profile is safe to feed to every formula in this package.
func (p PatientProfile) Resolve() (PatientProfile, error) {
	out := p

	out.Gender = ParseGender(string(p.Gender))

	// Unknown levels fall back to the estimator's default
	level, _ := ParseActivityLevel(string(p.ActivityLevel))
	out.ActivityLevel = level

	if out.Age == 0 {
		out.Age = DefaultAge
	}
	if out.WeightKg == 0 {
		out.WeightKg = DefaultWeightKg
	}
	if out.HeightCm == 0 {
		out.HeightCm = DefaultHeightCm
	}

	if out.Age <= 0 {
		return PatientProfile{}, fmt.Errorf("%w: age must be positive, got %d", ErrInvalidProfile, out.Age)
	}
	if !isFinite(out.WeightKg) || out.WeightKg <= 0 {
		return PatientProfile{}, fmt.Errorf("%w: weight_kg must be positive, got %v", ErrInvalidProfile, out.WeightKg)
	}
	if !isFinite(out.HeightCm) || out.HeightCm <= 0 {
		return PatientProfile{}, fmt.Errorf("%w: height_cm must be positive, got %v", ErrInvalidProfile, out.HeightCm)
	}

	return out, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
