package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/store"

	"github.com/dustin/go-humanize"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store *store.Store
	now   func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(store *store.Store) *QueryService {
	return &QueryService{store: store, now: time.Now}
}

// ReportSummary is one row of the reports list
type ReportSummary struct {
	ID          string
	Name        string
	ScoredAt    time.Time
	ScoredAgo   string // "3 days ago"
	Scores      analysis.CoreScoreSet
	Overall     int
	Fuel        analysis.FuelMix
	DataQuality string
}

// ListReports returns a page of report summaries, newest first
func (q *QueryService) ListReports(ctx context.Context, limit, offset int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	reports, err := q.store.ListReports(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	now := q.now()
	summaries := make([]ReportSummary, len(reports))
	for i, r := range reports {
		summaries[i] = ReportSummary{
			ID:          r.ID,
			Name:        r.Name,
			ScoredAt:    r.ScoredAt,
			ScoredAgo:   humanize.RelTime(r.ScoredAt, now, "ago", "from now"),
			Scores:      r.Scores,
			Overall:     OverallScore(r.Scores),
			Fuel:        r.Fuel,
			DataQuality: r.DataQuality,
		}
	}
	return summaries, nil
}

// CountReports returns the total number of stored reports
func (q *QueryService) CountReports(ctx context.Context) (int, error) {
	return q.store.CountReports(ctx)
}

// DeleteReport removes a stored report
func (q *QueryService) DeleteReport(ctx context.Context, id string) error {
	return q.store.DeleteReport(ctx, id)
}

// OverallScore is the rounded mean of the seven scores
func OverallScore(s analysis.CoreScoreSet) int {
	sum := 0
	for _, name := range analysis.ScoreNames {
		sum += s.Get(name)
	}
	return int(math.Round(float64(sum) / float64(len(analysis.ScoreNames))))
}

// FormatKcal formats an energy value as "1,775 kcal/day"
func FormatKcal(v float64) string {
	return humanize.Comma(int64(math.Round(v))) + " kcal/day"
}
