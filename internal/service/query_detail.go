package service

import (
	"context"
	"fmt"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/store"
)

// ScoreLine is one score with its rating and where it came from
type ScoreLine struct {
	Name   analysis.ScoreName
	Label  string
	Score  int
	Rating string
	Tier   string
	Detail string
}

// ReportDetail contains everything the detail screen shows
type ReportDetail struct {
	Report       store.Report
	Scores       []ScoreLine
	Overall      int
	FuelText     string // "53% fat / 47% carbohydrate"
	FuelLabel    string
	PredictedRMR string
	RMR          string
	HRData       []float64 // heart rate series for charting
	FromData     int       // scores computed from measured or calculated input
	Fallbacks    int       // scores from estimates or typical values
}

// GetReportDetail returns detailed info for a single report
func (q *QueryService) GetReportDetail(ctx context.Context, id string) (*ReportDetail, error) {
	report, err := q.store.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := q.store.GetProvenance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading provenance: %w", err)
	}

	return buildReportDetail(*report, rows), nil
}

// DetailFromScored builds the detail view of a report that was just scored
func DetailFromScored(s *ScoredReport) *ReportDetail {
	rows := make([]store.ProvenanceRow, 0, len(analysis.ScoreNames))
	for _, name := range analysis.ScoreNames {
		src := s.Provenance.Source(name)
		rows = append(rows, store.ProvenanceRow{
			ReportID: s.Report.ID,
			Score:    string(name),
			Tier:     string(src.Tier),
			Detail:   src.Detail,
		})
	}
	return buildReportDetail(s.Report, rows)
}

func buildReportDetail(report store.Report, rows []store.ProvenanceRow) *ReportDetail {
	byScore := make(map[string]store.ProvenanceRow, len(rows))
	for _, r := range rows {
		byScore[r.Score] = r
	}

	detail := &ReportDetail{
		Report:       report,
		Overall:      OverallScore(report.Scores),
		FuelText:     fmt.Sprintf("%d%% fat / %d%% carbohydrate", report.Fuel.FatPercent, report.Fuel.CarbPercent),
		FuelLabel:    analysis.FuelDescription(report.Fuel),
		PredictedRMR: FormatKcal(report.PredictedRMR),
		RMR:          FormatKcal(report.RMR),
		HRData:       downsample(report.Measurements.HeartRateSeries, MaxChartPoints),
	}

	for _, name := range analysis.ScoreNames {
		score := report.Scores.Get(name)
		prov := byScore[string(name)]

		switch analysis.Tier(prov.Tier) {
		case analysis.TierMeasured, analysis.TierCalculated:
			detail.FromData++
		default:
			detail.Fallbacks++
		}

		detail.Scores = append(detail.Scores, ScoreLine{
			Name:   name,
			Label:  analysis.ScoreLabel(name),
			Score:  score,
			Rating: analysis.ScoreRating(score),
			Tier:   prov.Tier,
			Detail: prov.Detail,
		})
	}

	return detail
}

// downsample keeps at most maxPoints evenly spaced values
func downsample(data []float64, maxPoints int) []float64 {
	if len(data) <= maxPoints || maxPoints <= 0 {
		return data
	}
	out := make([]float64, maxPoints)
	step := float64(len(data)-1) / float64(maxPoints-1)
	for i := range out {
		out[i] = data[int(float64(i)*step+0.5)]
	}
	return out
}
