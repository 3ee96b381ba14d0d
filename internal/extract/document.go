package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"metabolic-report/internal/analysis"
)

// ErrEmptyExtraction is returned when a document carries nothing to score
var ErrEmptyExtraction = errors.New("extraction contains no patient data or measurements")

// Document is the JSON bag produced by the PDF extractor.
// Values may be numbers or strings such as "1,650 kcal".
type Document struct {
	Source  string           `json:"source,omitempty"`
	Patient map[string]any   `json:"patient,omitempty"`
	Values  map[string]any   `json:"values,omitempty"`
	Series  map[string][]any `json:"series,omitempty"`
	Charts  map[string]any   `json:"charts,omitempty"`
}

// Decode reads a document from r
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding extraction: %w", err)
	}
	if doc.IsEmpty() {
		return nil, ErrEmptyExtraction
	}
	return &doc, nil
}

// ReadFile decodes the document at path. Source defaults to the file name.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening extraction: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if doc.Source == "" {
		doc.Source = filepath.Base(path)
	}
	return doc, nil
}

// IsEmpty reports whether the document has no patient fields and no readings
func (d *Document) IsEmpty() bool {
	return len(d.Patient) == 0 && len(d.Values) == 0 && len(d.Series) == 0 && len(d.Charts) == 0
}

// Profile maps the patient section. Missing or unparseable fields stay zero
// so analysis.PatientProfile.Resolve can substitute defaults.
func (d *Document) Profile() analysis.PatientProfile {
	var p analysis.PatientProfile

	for _, key := range sortedKeys(d.Patient) {
		raw := d.Patient[key]
		a, ok := patientAliases[normalizeKey(key)]
		if !ok {
			continue
		}

		switch a.field {
		case fieldGender:
			if s, ok := raw.(string); ok {
				p.Gender = analysis.ParseGender(s)
			}
		case fieldActivity:
			if s, ok := raw.(string); ok {
				if level, ok := analysis.ParseActivityLevel(s); ok {
					p.ActivityLevel = level
				}
			}
		case fieldAge:
			if q, ok := parseQuantity(raw); ok {
				p.Age = int(q.Value)
			}
		case fieldWeight:
			if q, ok := parseQuantity(raw); ok {
				p.WeightKg = q.withDefaultUnit(a.unit).kilograms()
			}
		case fieldHeight:
			if q, ok := parseQuantity(raw); ok {
				p.HeightCm = q.withDefaultUnit(a.unit).centimeters()
			}
		}
	}

	return p
}

// Measurements maps the values, charts and series sections
func (d *Document) Measurements() analysis.RawMeasurements {
	var m analysis.RawMeasurements

	for _, key := range sortedKeys(d.Values) {
		raw := d.Values[key]
		a, ok := valueAliases[normalizeKey(key)]
		if !ok {
			continue
		}
		q, ok := parseQuantity(raw)
		if !ok {
			continue
		}
		if v := q.withDefaultUnit(a.unit).convert(a.field); v != 0 {
			m.Set(a.field, v)
		}
	}

	for _, key := range sortedKeys(d.Charts) {
		raw := d.Charts[key]
		a, ok := valueAliases[normalizeKey(key)]
		if !ok {
			continue
		}
		q, ok := parseQuantity(raw)
		if !ok || q.Value == 0 {
			continue
		}
		switch a.field {
		case analysis.FieldVEVO2:
			m.VEVO2Chart = analysis.Float(q.Value)
		case analysis.FieldVEVCO2:
			m.VEVCO2Chart = analysis.Float(q.Value)
		}
	}

	for _, key := range sortedKeys(d.Series) {
		raw := d.Series[key]
		a, ok := seriesAliases[normalizeKey(key)]
		if !ok {
			continue
		}
		values := parseSeries(raw, a)
		switch a.field {
		case analysis.FieldHeartRate:
			m.HeartRateSeries = values
		case analysis.FieldVO2:
			m.VO2Series = values
		case analysis.FieldVCO2:
			m.VCO2Series = values
		case analysis.FieldRER:
			m.RERSeries = values
		}
	}

	m.HeartRateSeries = present(m.HeartRateSeries)
	m.RERSeries = present(m.RERSeries)
	m.VO2Series, m.VCO2Series = pairGas(m.VO2Series, m.VCO2Series)

	return m
}

// UnknownKeys lists keys that matched no alias, prefixed by section
func (d *Document) UnknownKeys() []string {
	var keys []string
	for k := range d.Patient {
		if _, ok := patientAliases[normalizeKey(k)]; !ok {
			keys = append(keys, "patient."+k)
		}
	}
	for k := range d.Values {
		if _, ok := valueAliases[normalizeKey(k)]; !ok {
			keys = append(keys, "values."+k)
		}
	}
	for k := range d.Charts {
		if a, ok := valueAliases[normalizeKey(k)]; !ok || (a.field != analysis.FieldVEVO2 && a.field != analysis.FieldVEVCO2) {
			keys = append(keys, "charts."+k)
		}
	}
	for k := range d.Series {
		if _, ok := seriesAliases[normalizeKey(k)]; !ok {
			keys = append(keys, "series."+k)
		}
	}
	sort.Strings(keys)
	return keys
}

// parseSeries converts every sample and leaves NaN where a sample is
// absent, so positions still line up with the other series
func parseSeries(raw []any, a alias[analysis.Field]) []float64 {
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = math.NaN()
		q, ok := parseQuantity(r)
		if !ok {
			continue
		}
		if v := q.withDefaultUnit(a.unit).convert(a.field); v != 0 {
			out[i] = v
		}
	}
	return out
}

// present drops the NaN placeholders
func present(values []float64) []float64 {
	var out []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// pairGas keeps only the breaths where both VO2 and VCO2 were read.
// Samples past the end of the shorter series have no partner.
func pairGas(vo2, vco2 []float64) ([]float64, []float64) {
	n := min(len(vo2), len(vco2))
	var outVO2, outVCO2 []float64
	for i := 0; i < n; i++ {
		if math.IsNaN(vo2[i]) || math.IsNaN(vco2[i]) {
			continue
		}
		outVO2 = append(outVO2, vo2[i])
		outVCO2 = append(outVCO2, vco2[i])
	}
	return outVO2, outVCO2
}

// sortedKeys fixes iteration order so repeated aliases resolve the same way
// on every run; the last key in sorted order wins
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeKey lowercases and keeps only letters and digits,
// so "VE/VO2", "ve_vo2" and "Ve-VO2" all become "vevo2"
func normalizeKey(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
