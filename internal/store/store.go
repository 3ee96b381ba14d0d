package store

//go:generate sqlc generate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/store/sqlc"

	"github.com/google/uuid"
)

// Store wraps sqlc.Queries and provides the application's data access layer.
type Store struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// newStore creates a Store from a database connection.
func newStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		queries: sqlc.New(db),
	}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// --- Report Methods ---

// SaveReport inserts a report and its provenance in one transaction.
// A missing ID or ScoredAt is filled in and written back to r.
func (s *Store) SaveReport(ctx context.Context, r *Report, prov analysis.Provenance) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ScoredAt.IsZero() {
		r.ScoredAt = time.Now().UTC()
	}

	measurements, err := json.Marshal(r.Measurements)
	if err != nil {
		return fmt.Errorf("encoding measurements: %w", err)
	}
	notes, err := json.Marshal(r.Notes)
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	q := s.queries.WithTx(tx)

	err = q.InsertReport(ctx, sqlc.InsertReportParams{
		ID:               r.ID,
		Name:             r.Name,
		SourceFile:       toNullString(r.SourceFile),
		ScoredAt:         r.ScoredAt.Format(time.RFC3339Nano),
		Age:              int64(r.Profile.Age),
		Gender:           string(r.Profile.Gender),
		WeightKg:         r.Profile.WeightKg,
		HeightCm:         r.Profile.HeightCm,
		ActivityLevel:    toNullString(string(r.Profile.ActivityLevel)),
		MetabolicRate:    int64(r.Scores.MetabolicRate),
		FatBurning:       int64(r.Scores.FatBurning),
		LungUtil:         int64(r.Scores.LungUtil),
		Hrv:              int64(r.Scores.HRV),
		SympParasym:      int64(r.Scores.SympParasym),
		VentilationEff:   int64(r.Scores.VentilationEff),
		BreathingCoord:   int64(r.Scores.BreathingCoord),
		FatPercent:       int64(r.Fuel.FatPercent),
		CarbPercent:      int64(r.Fuel.CarbPercent),
		PredictedRmr:     r.PredictedRMR,
		ResolvedRmr:      r.RMR,
		ResolvedRer:      r.RER,
		DataQuality:      r.DataQuality,
		MeasurementsJson: toNullString(string(measurements)),
		NotesJson:        toNullString(string(notes)),
	})
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	for _, name := range analysis.ScoreNames {
		src, ok := prov.Sources[name]
		if !ok {
			continue
		}
		err := q.InsertProvenance(ctx, sqlc.InsertProvenanceParams{
			ReportID: r.ID,
			Score:    string(name),
			Tier:     string(src.Tier),
			Detail:   toNullString(src.Detail),
		})
		if err != nil {
			return fmt.Errorf("inserting provenance for %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// GetReport retrieves a report by ID
func (s *Store) GetReport(ctx context.Context, id string) (*Report, error) {
	row, err := s.queries.GetReport(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return reportRowToReport(row)
}

// ListReports returns reports newest first
func (s *Store) ListReports(ctx context.Context, limit, offset int) ([]Report, error) {
	rows, err := s.queries.ListReports(ctx, sqlc.ListReportsParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}
	reports := make([]Report, 0, len(rows))
	for _, row := range rows {
		r, err := reportRowToReport(row)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	return reports, nil
}

// CountReports returns the number of stored reports
func (s *Store) CountReports(ctx context.Context) (int, error) {
	count, err := s.queries.CountReports(ctx)
	return int(count), err
}

// GetProvenance returns a report's provenance rows in report order
func (s *Store) GetProvenance(ctx context.Context, reportID string) ([]ProvenanceRow, error) {
	rows, err := s.queries.GetProvenance(ctx, reportID)
	if err != nil {
		return nil, err
	}

	byScore := make(map[string]ProvenanceRow, len(rows))
	for _, row := range rows {
		byScore[row.Score] = ProvenanceRow{
			ReportID: row.ReportID,
			Score:    row.Score,
			Tier:     row.Tier,
			Detail:   row.Detail.String,
		}
	}

	result := make([]ProvenanceRow, 0, len(byScore))
	for _, name := range analysis.ScoreNames {
		if p, ok := byScore[string(name)]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

// DeleteReport removes a report; its provenance cascades
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	result, err := s.queries.DeleteReport(ctx, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReportNotFound
	}
	return nil
}

// --- Helpers ---

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func reportRowToReport(row sqlc.Report) (*Report, error) {
	scoredAt, err := time.Parse(time.RFC3339Nano, row.ScoredAt)
	if err != nil {
		return nil, fmt.Errorf("parsing scored_at %q: %w", row.ScoredAt, err)
	}

	r := &Report{
		ID:         row.ID,
		Name:       row.Name,
		SourceFile: row.SourceFile.String,
		ScoredAt:   scoredAt,
		Profile: analysis.PatientProfile{
			Age:           int(row.Age),
			Gender:        analysis.Gender(row.Gender),
			WeightKg:      row.WeightKg,
			HeightCm:      row.HeightCm,
			ActivityLevel: analysis.ActivityLevel(row.ActivityLevel.String),
		},
		Scores: analysis.CoreScoreSet{
			MetabolicRate:  int(row.MetabolicRate),
			FatBurning:     int(row.FatBurning),
			LungUtil:       int(row.LungUtil),
			HRV:            int(row.Hrv),
			SympParasym:    int(row.SympParasym),
			VentilationEff: int(row.VentilationEff),
			BreathingCoord: int(row.BreathingCoord),
		},
		Fuel: analysis.FuelMix{
			FatPercent:  int(row.FatPercent),
			CarbPercent: int(row.CarbPercent),
		},
		PredictedRMR: row.PredictedRmr,
		RMR:          row.ResolvedRmr,
		RER:          row.ResolvedRer,
		DataQuality:  row.DataQuality,
	}

	if row.MeasurementsJson.Valid && row.MeasurementsJson.String != "" {
		if err := json.Unmarshal([]byte(row.MeasurementsJson.String), &r.Measurements); err != nil {
			return nil, fmt.Errorf("decoding measurements for %s: %w", r.ID, err)
		}
	}
	if row.NotesJson.Valid && row.NotesJson.String != "" {
		if err := json.Unmarshal([]byte(row.NotesJson.String), &r.Notes); err != nil {
			return nil, fmt.Errorf("decoding notes for %s: %w", r.ID, err)
		}
	}

	return r, nil
}
