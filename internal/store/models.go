package store

import (
	"time"

	"metabolic-report/internal/analysis"
)

// Report is a scored metabolic report
type Report struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	SourceFile string    `db:"source_file"`
	ScoredAt   time.Time `db:"scored_at"`

	// Resolved profile, defaults already applied
	Profile analysis.PatientProfile

	Scores       analysis.CoreScoreSet
	Fuel         analysis.FuelMix
	PredictedRMR float64 `db:"predicted_rmr"` // kcal/day
	RMR          float64 `db:"resolved_rmr"`  // kcal/day
	RER          float64 `db:"resolved_rer"`
	DataQuality  string  `db:"data_quality"`

	Measurements analysis.RawMeasurements `db:"measurements_json"`
	Notes        []string                 `db:"notes_json"`
}

// ProvenanceRow is one score's audit entry
type ProvenanceRow struct {
	ReportID string `db:"report_id"`
	Score    string `db:"score"`
	Tier     string `db:"tier"`
	Detail   string `db:"detail"`
}
