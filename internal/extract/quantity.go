package extract

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"metabolic-report/internal/analysis"
)

// quantity is a number with the unit text that followed it, if any
type quantity struct {
	Value float64
	Unit  string
}

var quantityPattern = regexp.MustCompile(`^\s*([-+]?(?:\d+(?:\.\d*)?|\.\d+))\s*(.*?)\s*$`)

// parseQuantity accepts JSON numbers and strings like "1,650 kcal/day",
// "0,85" or "72 bpm". Placeholders such as "--" or "n/a" do not parse.
func parseQuantity(raw any) (quantity, bool) {
	var q quantity

	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return q, false
		}
		q.Value = f
	case float64:
		q.Value = v
	case int:
		q.Value = float64(v)
	case string:
		m := quantityPattern.FindStringSubmatch(normalizeDecimal(v))
		if m == nil {
			return q, false
		}
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return q, false
		}
		q.Value = f
		q.Unit = strings.ToLower(m[2])
	default:
		return q, false
	}

	if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
		return quantity{}, false
	}
	return q, true
}

// normalizeDecimal strips thousands separators. A lone comma is read as a
// decimal comma unless exactly three digits follow it and the integer part
// is not zero: "0,841" is 0.841, "1,650" is 1650.
func normalizeDecimal(s string) string {
	if strings.Contains(s, ".") || strings.Count(s, ",") != 1 {
		return strings.ReplaceAll(s, ",", "")
	}
	i := strings.Index(s, ",")
	if strings.Trim(s[:i], " +-0") == "" {
		return strings.Replace(s, ",", ".", 1)
	}
	digits := 0
	for _, r := range s[i+1:] {
		if r < '0' || r > '9' {
			break
		}
		digits++
	}
	if digits == 3 {
		return strings.ReplaceAll(s, ",", "")
	}
	return strings.Replace(s, ",", ".", 1)
}

// withDefaultUnit fills in the unit implied by the key
func (q quantity) withDefaultUnit(unit string) quantity {
	if q.Unit == "" {
		q.Unit = unit
	}
	return q
}

// convert returns the value in the unit analysis.RawMeasurements expects
func (q quantity) convert(field analysis.Field) float64 {
	unit := compactUnit(q.Unit)
	switch field {
	case analysis.FieldVO2, analysis.FieldVCO2:
		if unit == "lmin" || unit == "l" {
			return q.Value * 1000
		}
	case analysis.FieldRMR:
		if strings.HasPrefix(unit, "kj") {
			return q.Value / 4.184
		}
	}
	return q.Value
}

func (q quantity) kilograms() float64 {
	switch compactUnit(q.Unit) {
	case "lb", "lbs", "pound", "pounds":
		return q.Value * 0.45359237
	case "g":
		return q.Value / 1000
	default:
		return q.Value
	}
}

func (q quantity) centimeters() float64 {
	switch compactUnit(q.Unit) {
	case "in", "inch", "inches":
		return q.Value * 2.54
	case "m":
		return q.Value * 100
	case "mm":
		return q.Value / 10
	default:
		return q.Value
	}
}

func compactUnit(unit string) string {
	return normalizeKey(unit)
}
