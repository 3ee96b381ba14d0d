package analysis

import "fmt"

// Reconciled is the measurement bundle after every trust decision.
// Optional values are nil when no tier could supply them.
type Reconciled struct {
	PredictedRMR float64

	RMR       float64
	RMRRatio  float64
	RatioOK   bool // false when predicted RMR is not positive
	RMRSource Source

	// RER drives both fat burning and the fuel mix
	RER       float64
	RERSource Source

	// MeasuredRER is set only from real data (scalar, series or VCO2/VO2)
	MeasuredRER *float64

	VEVO2        *float64
	VEVO2Source  Source
	VEVCO2       *float64
	VEVCO2Source Source

	HeartRates []float64
	RestingHR  *float64

	RERSeries  []float64
	VO2Series  []float64
	VCO2Series []float64

	Notes []string
}

// Normalize checks every raw measurement against plausible ranges and picks
// a trusted value or a substitute for each. The profile must be resolved.
func Normalize(p PatientProfile, raw RawMeasurements, t Tables) Reconciled {
	var rec Reconciled

	rec.PredictedRMR = PredictedRMR(p)
	reconcileRMR(&rec, p, raw, t)
	reconcileSeries(&rec, raw, t)
	reconcileRER(&rec, p, raw, t)
	reconcileVentilation(&rec, raw, t)

	return rec
}

func (rec *Reconciled) note(format string, args ...any) {
	rec.Notes = append(rec.Notes, fmt.Sprintf(format, args...))
}

// reconcileRMR accepts an extracted RMR only inside the plausibility band.
// Table extraction sometimes lands a VO2 (ml/min) in the RMR cell; the
// band catches that without rejecting genuinely atypical metabolisms.
func reconcileRMR(rec *Reconciled, p PatientProfile, raw RawMeasurements, t Tables) {
	if extracted, ok := value(raw.RMR); ok {
		ratio, ratioOK := RMRRatio(extracted, rec.PredictedRMR)
		if ratioOK && ratio > t.RMRRatioLow && ratio < t.RMRRatioHigh {
			rec.RMR = extracted
			rec.RMRRatio = ratio
			rec.RatioOK = true
			rec.RMRSource = Source{
				Tier:   TierMeasured,
				Detail: fmt.Sprintf("measured RMR %.0f / predicted %.0f = %.2f", extracted, rec.PredictedRMR, ratio),
			}
			return
		}
		rec.note("extracted RMR %.0f rejected: ratio to predicted %.0f outside (%.2f, %.2f)",
			extracted, rec.PredictedRMR, t.RMRRatioLow, t.RMRRatioHigh)
	}

	rec.RMR = EstimateRMR(p, t)
	rec.RMRRatio, rec.RatioOK = RMRRatio(rec.RMR, rec.PredictedRMR)
	if !rec.RatioOK {
		rec.RMRSource = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("predicted RMR %.0f not positive, neutral score", rec.PredictedRMR),
		}
		return
	}
	rec.RMRSource = Source{
		Tier:   TierEstimated,
		Detail: fmt.Sprintf("%s = %.0f, ratio %.2f", estimateRMRDetail(p, t), rec.RMR, rec.RMRRatio),
	}
}

// reconcileSeries drops implausible samples and pairs VO2 with VCO2
func reconcileSeries(rec *Reconciled, raw RawMeasurements, t Tables) {
	rec.HeartRates = filterRange(raw.HeartRateSeries, t.HeartRateRange)
	if dropped := len(raw.HeartRateSeries) - len(rec.HeartRates); dropped > 0 {
		rec.note("%d heart rate samples outside %.0f-%.0f bpm dropped",
			dropped, t.HeartRateRange.Min, t.HeartRateRange.Max)
	}

	if len(rec.HeartRates) > 0 {
		hr := mean(rec.HeartRates)
		rec.RestingHR = &hr
	} else if hr, ok := value(raw.HeartRate); ok && t.HeartRateRange.Contains(hr) {
		rec.RestingHR = &hr
	}

	n := len(raw.VO2Series)
	if len(raw.VCO2Series) < n {
		n = len(raw.VCO2Series)
	}
	for i := 0; i < n; i++ {
		vo2, vco2 := raw.VO2Series[i], raw.VCO2Series[i]
		if !isFinite(vo2) || !isFinite(vco2) || !t.VO2Range.Contains(vo2) || !t.VCO2Range.Contains(vco2) {
			continue
		}
		rec.VO2Series = append(rec.VO2Series, vo2)
		rec.VCO2Series = append(rec.VCO2Series, vco2)
	}

	if len(raw.RERSeries) > 0 {
		rec.RERSeries = filterRange(raw.RERSeries, t.RERSeriesRange)
		return
	}
	// No RER column: derive it breath by breath
	for i := range rec.VO2Series {
		rer := rec.VCO2Series[i] / rec.VO2Series[i]
		if t.RERSeriesRange.Contains(rer) {
			rec.RERSeries = append(rec.RERSeries, rer)
		}
	}
}

// reconcileRER picks the RER used for fat burning and the fuel mix
func reconcileRER(rec *Reconciled, p PatientProfile, raw RawMeasurements, t Tables) {
	if rer, ok := value(raw.RER); ok {
		if t.RERBand.Contains(rer) {
			rec.setMeasuredRER(rer, Source{Tier: TierMeasured, Detail: fmt.Sprintf("measured RER %.3f", rer)})
			return
		}
		rec.note("extracted RER %.3f outside resting band %.2f-%.2f", rer, t.RERBand.Min, t.RERBand.Max)
	}

	if len(rec.RERSeries) > 0 {
		rer := mean(rec.RERSeries)
		if t.RERBand.Contains(rer) {
			rec.setMeasuredRER(rer, Source{
				Tier:   TierMeasured,
				Detail: fmt.Sprintf("mean RER %.3f over %d samples", rer, len(rec.RERSeries)),
			})
			return
		}
	}

	vo2, okO2 := value(raw.VO2)
	vco2, okCO2 := value(raw.VCO2)
	if okO2 && okCO2 && t.VO2Range.Contains(vo2) && t.VCO2Range.Contains(vco2) {
		rer := vco2 / vo2
		if t.RERBand.Contains(rer) {
			rec.setMeasuredRER(rer, Source{
				Tier:   TierCalculated,
				Detail: fmt.Sprintf("RER = VCO2 %.0f / VO2 %.0f = %.3f", vco2, vo2, rer),
			})
			return
		}
		rec.note("VCO2/VO2 ratio %.3f outside resting band", rer)
	}

	if !rec.RatioOK {
		rec.RER = t.TypicalRER
		rec.RERSource = Source{Tier: TierTypical, Detail: fmt.Sprintf("typical RER %.2f", t.TypicalRER)}
		return
	}

	rec.RER = EstimateRER(rec.RMRRatio, p.Age, t)
	rec.RERSource = Source{
		Tier:   TierEstimated,
		Detail: fmt.Sprintf("RER %.3f estimated from RMR ratio %.2f and age %d", rec.RER, rec.RMRRatio, p.Age),
	}
}

func (rec *Reconciled) setMeasuredRER(rer float64, src Source) {
	rec.RER = rer
	rec.RERSource = src
	rec.MeasuredRER = &rer
}

// reconcileVentilation resolves VE/VO2 and VE/VCO2: direct reading, then
// chart reading, then VE divided by the gas volume
func reconcileVentilation(rec *Reconciled, raw RawMeasurements, t Tables) {
	ve, okVE := value(raw.VE)
	if okVE && !t.VERange.Contains(ve) {
		rec.note("extracted VE %.1f L/min outside plausible range", ve)
		okVE = false
	}
	vo2, okO2 := value(raw.VO2)
	okO2 = okO2 && t.VO2Range.Contains(vo2)
	vco2, okCO2 := value(raw.VCO2)
	okCO2 = okCO2 && t.VCO2Range.Contains(vco2)

	rec.VEVO2, rec.VEVO2Source = resolveEquivalent(rec, "VE/VO2", raw.VEVO2, raw.VEVO2Chart,
		ve, vo2, okVE && okO2, t.VEVO2Range)
	rec.VEVCO2, rec.VEVCO2Source = resolveEquivalent(rec, "VE/VCO2", raw.VEVCO2, raw.VEVCO2Chart,
		ve, vco2, okVE && okCO2, t.VEVCO2Range)
}

func resolveEquivalent(rec *Reconciled, label string, direct, chart *float64, ve, gas float64, canCompute bool, r Range) (*float64, Source) {
	if v, ok := value(direct); ok {
		if r.Contains(v) {
			return &v, Source{Tier: TierMeasured, Detail: fmt.Sprintf("measured %s %.1f", label, v)}
		}
		rec.note("extracted %s %.1f outside plausible range %.0f-%.0f", label, v, r.Min, r.Max)
	}

	if v, ok := value(chart); ok {
		if r.Contains(v) {
			return &v, Source{Tier: TierCalculated, Detail: fmt.Sprintf("%s %.1f read from chart axis", label, v)}
		}
		rec.note("chart %s %.1f outside plausible range", label, v)
	}

	if canCompute {
		v := ve * 1000 / gas
		if r.Contains(v) {
			return &v, Source{
				Tier:   TierCalculated,
				Detail: fmt.Sprintf("%s = VE %.1f L/min x 1000 / %.0f ml/min = %.1f", label, ve, gas, v),
			}
		}
		rec.note("computed %s %.1f outside plausible range", label, v)
	}

	return nil, Source{}
}
