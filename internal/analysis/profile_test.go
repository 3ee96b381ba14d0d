package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in       string
		expected Gender
	}{
		{"male", GenderMale},
		{"Male", GenderMale},
		{"FEMALE", GenderFemale},
		{" female ", GenderFemale},
		{"F", GenderFemale},
		{"", GenderMale},
		{"unknown", GenderMale},
	}

	for _, tt := range tests {
		if got := ParseGender(tt.in); got != tt.expected {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected ActivityLevel
		ok       bool
	}{
		{"moderate", ActivityModerate, true},
		{"Very Active", ActivityVeryActive, true},
		{"very-active", ActivityVeryActive, true},
		{"SEDENTARY", ActivitySedentary, true},
		{"couch", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseActivityLevel(tt.in)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseActivityLevel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	p, err := PatientProfile{}.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if p.Age != DefaultAge {
		t.Errorf("Age = %d, want %d", p.Age, DefaultAge)
	}
	if p.WeightKg != DefaultWeightKg {
		t.Errorf("WeightKg = %v, want %v", p.WeightKg, DefaultWeightKg)
	}
	if p.HeightCm != DefaultHeightCm {
		t.Errorf("HeightCm = %v, want %v", p.HeightCm, DefaultHeightCm)
	}
	if p.Gender != GenderMale {
		t.Errorf("Gender = %q, want male", p.Gender)
	}
	if p.ActivityLevel != "" {
		t.Errorf("ActivityLevel = %q, want empty", p.ActivityLevel)
	}
}

func TestResolveKeepsValues(t *testing.T) {
	in := PatientProfile{Age: 52, Gender: "Female", WeightKg: 61.5, HeightCm: 165, ActivityLevel: "Active"}
	p, err := in.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := PatientProfile{Age: 52, Gender: GenderFemale, WeightKg: 61.5, HeightCm: 165, ActivityLevel: ActivityActive}
	if p != want {
		t.Errorf("Resolve() = %+v, want %+v", p, want)
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		profile PatientProfile
	}{
		{"negative age", PatientProfile{Age: -1}},
		{"negative weight", PatientProfile{WeightKg: -1}},
		{"negative height", PatientProfile{HeightCm: -180}},
		{"NaN weight", PatientProfile{WeightKg: math.NaN()}},
		{"infinite height", PatientProfile{HeightCm: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.profile.Resolve()
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Resolve() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestPredictedRMR(t *testing.T) {
	tests := []struct {
		name     string
		profile  PatientProfile
		expected float64
	}{
		{"male", PatientProfile{Age: 35, Gender: GenderMale, WeightKg: 77, HeightCm: 188}, 1775},
		{"female", PatientProfile{Age: 35, Gender: GenderFemale, WeightKg: 77, HeightCm: 188}, 1609},
		{"mixed case female", PatientProfile{Age: 35, Gender: "Female", WeightKg: 77, HeightCm: 188}, 1609},
		{"unrecognized uses male", PatientProfile{Age: 35, Gender: "x", WeightKg: 77, HeightCm: 188}, 1775},
		{"1700 reference", profile1700, 1700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictedRMR(tt.profile)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("PredictedRMR() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRMRRatio(t *testing.T) {
	if _, ok := RMRRatio(1500, 0); ok {
		t.Error("RMRRatio with zero predicted should not be ok")
	}
	ratio, ok := RMRRatio(1700, 1700)
	if !ok || ratio != 1 {
		t.Errorf("RMRRatio(1700, 1700) = (%v, %v), want (1, true)", ratio, ok)
	}
}
