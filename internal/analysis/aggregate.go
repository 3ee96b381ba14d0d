package analysis

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Scorer turns a profile and raw measurements into a complete score set.
// A Scorer holds no per-call state and is safe for concurrent use.
type Scorer struct {
	tables Tables
	log    logrus.FieldLogger
}

// NewScorer creates a scorer with the given tables. log may be nil.
func NewScorer(tables Tables, log logrus.FieldLogger) *Scorer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Scorer{tables: tables, log: log}
}

// Tables returns the constants this scorer was built with
func (s *Scorer) Tables() Tables {
	return s.tables
}

var defaultScorer = NewScorer(DefaultTables(), nil)

// ComputeCoreScores scores with the default tables and no logging.
// The only error is ErrInvalidProfile; missing or implausible measurements
// fall back to estimates and never fail.
func ComputeCoreScores(p PatientProfile, raw RawMeasurements) (CoreScoreSet, FuelMix, Provenance, error) {
	res, err := defaultScorer.Compute(p, raw)
	if err != nil {
		return CoreScoreSet{}, FuelMix{}, Provenance{}, err
	}
	return res.Scores, res.Fuel, res.Provenance, nil
}

// Compute runs normalization, the formulas and the fallback estimator.
// Each score takes the first tier available: measured data, a correlate or
// chart reading, then the demographic or typical fallback.
func (s *Scorer) Compute(p PatientProfile, raw RawMeasurements) (Result, error) {
	profile, err := p.Resolve()
	if err != nil {
		return Result{}, err
	}

	t := s.tables
	rec := Normalize(profile, raw, t)
	prov := newProvenance()
	var scores CoreScoreSet

	// Metabolic rate
	scores.MetabolicRate = MetabolicRateScore(rec.RMR, rec.PredictedRMR)
	prov.Sources[ScoreMetabolicRate] = rec.RMRSource

	// Fat burning and fuel mix share one RER
	scores.FatBurning = FatBurningScore(rec.RER)
	fuel := FuelMixFromRER(rec.RER)
	prov.Sources[ScoreFatBurning] = Source{
		Tier:   rec.RERSource.Tier,
		Detail: fmt.Sprintf("%s; fat %d%% x 1.1", rec.RERSource.Detail, fuel.FatPercent),
	}

	// Lung utilization
	if rec.VEVO2 != nil {
		scores.LungUtil = LungUtilScore(*rec.VEVO2)
		prov.Sources[ScoreLungUtil] = rec.VEVO2Source
	} else {
		scores.LungUtil = TypicalLungUtil(t)
		prov.Sources[ScoreLungUtil] = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("no VE/VO2 data, typical resting score %d", scores.LungUtil),
		}
	}

	// Ventilation efficiency
	if rec.VEVCO2 != nil {
		scores.VentilationEff = VentilationEffScore(*rec.VEVCO2)
		prov.Sources[ScoreVentilationEff] = rec.VEVCO2Source
	} else {
		scores.VentilationEff = TypicalVentilationEff(t)
		prov.Sources[ScoreVentilationEff] = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("no VE/VCO2 data, typical VE/VCO2 %.0f", t.TypicalVEVCO2),
		}
	}

	// HRV
	var hrvPtr *int
	if hrv, ok := HRVScore(rec.HeartRates); ok {
		scores.HRV = hrv
		hrvPtr = &hrv
		prov.Sources[ScoreHRV] = Source{
			Tier: TierMeasured,
			Detail: fmt.Sprintf("HR CV %.1f%% over %d samples",
				coefficientOfVariation(rec.HeartRates), len(rec.HeartRates)),
		}
	} else {
		scores.HRV = t.DefaultHRVScore
		prov.Sources[ScoreHRV] = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("%d HR samples, need %d; default %d", len(rec.HeartRates), minSamples, t.DefaultHRVScore),
		}
	}

	// Breathing coordination
	if bc, ok := BreathingCoordScore(rec.RERSeries, rec.VO2Series, rec.VCO2Series, rec.HeartRates); ok {
		scores.BreathingCoord = bc
		prov.Sources[ScoreBreathingCoord] = Source{
			Tier:   TierMeasured,
			Detail: breathingDetail(rec),
		}
	} else {
		scores.BreathingCoord = t.DefaultBreathingCoordScore
		prov.Sources[ScoreBreathingCoord] = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("no series data, average default %d", t.DefaultBreathingCoordScore),
		}
	}

	// Sympathetic/parasympathetic balance
	if sp, ok := SympParasymScore(rec.RestingHR, hrvPtr, rec.MeasuredRER); ok {
		scores.SympParasym = sp
		prov.Sources[ScoreSympParasym] = Source{
			Tier:   TierMeasured,
			Detail: sympParasymDetail(rec, hrvPtr),
		}
	} else {
		scores.SympParasym = t.DefaultSympParasymScore
		prov.Sources[ScoreSympParasym] = Source{
			Tier:   TierTypical,
			Detail: fmt.Sprintf("no HR or RER data, default %d", t.DefaultSympParasymScore),
		}
	}

	prov.Notes = rec.Notes
	s.logRun(scores, prov)

	return Result{
		Scores:       scores,
		Fuel:         fuel,
		Provenance:   prov,
		PredictedRMR: rec.PredictedRMR,
		RMR:          rec.RMR,
		RER:          rec.RER,
	}, nil
}

func (s *Scorer) logRun(scores CoreScoreSet, prov Provenance) {
	for _, n := range prov.Notes {
		s.log.WithField("check", "plausibility").Warn(n)
	}
	for _, name := range ScoreNames {
		src := prov.Sources[name]
		s.log.WithFields(logrus.Fields{
			"score": name,
			"value": scores.Get(name),
			"tier":  src.Tier,
		}).Debug(src.Detail)
	}
}

func breathingDetail(rec Reconciled) string {
	subs := breathingSubScores(rec.RERSeries, rec.VO2Series, rec.VCO2Series, rec.HeartRates)
	detail := "mean of"
	for i, sub := range subs {
		if i > 0 {
			detail += ","
		}
		detail += fmt.Sprintf(" %s %.2f -> %.0f", sub.name, sub.input, sub.score)
	}
	return detail
}

func sympParasymDetail(rec Reconciled, hrv *int) string {
	detail := "mean of"
	sep := ""
	if rec.RestingHR != nil {
		detail += fmt.Sprintf(" HR %.0f bpm -> %.0f", *rec.RestingHR, heartRateBandScore(*rec.RestingHR))
		sep = ","
	}
	if hrv != nil {
		detail += fmt.Sprintf("%s HRV %d", sep, *hrv)
		sep = ","
	}
	if rec.MeasuredRER != nil {
		detail += fmt.Sprintf("%s RER %.3f -> %.0f", sep, *rec.MeasuredRER, rerBandScore(*rec.MeasuredRER))
	}
	return detail
}
