package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/store/sqlc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	s, err := NewTestStore(sqlDB)
	if err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to prepare test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return s
}

func scoredReport(t *testing.T, name string, scoredAt time.Time) (*Report, analysis.Provenance) {
	t.Helper()

	profile := analysis.PatientProfile{Age: 40, Gender: analysis.GenderFemale, WeightKg: 65, HeightCm: 168}
	raw := analysis.RawMeasurements{
		RMR:             analysis.Float(1450),
		RER:             analysis.Float(0.80),
		HeartRateSeries: []float64{62, 64, 61, 66, 63},
	}

	res, err := analysis.NewScorer(analysis.DefaultTables(), nil).Compute(profile, raw)
	require.NoError(t, err)

	resolved, err := profile.Resolve()
	require.NoError(t, err)

	return &Report{
		Name:         name,
		SourceFile:   name + ".json",
		ScoredAt:     scoredAt,
		Profile:      resolved,
		Scores:       res.Scores,
		Fuel:         res.Fuel,
		PredictedRMR: res.PredictedRMR,
		RMR:          res.RMR,
		RER:          res.RER,
		DataQuality:  res.Provenance.DataQuality(),
		Measurements: raw,
		Notes:        res.Provenance.Notes,
	}, res.Provenance
}

func TestSaveAndGetReport(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	scoredAt := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	r, prov := scoredReport(t, "baseline", scoredAt)
	require.NoError(t, s.SaveReport(ctx, r, prov))
	require.NotEmpty(t, r.ID, "SaveReport should assign an ID")

	got, err := s.GetReport(ctx, r.ID)
	require.NoError(t, err)

	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, "baseline.json", got.SourceFile)
	assert.True(t, scoredAt.Equal(got.ScoredAt))
	assert.Equal(t, r.Profile, got.Profile)
	assert.Equal(t, r.Scores, got.Scores)
	assert.Equal(t, r.Fuel, got.Fuel)
	assert.Equal(t, r.RMR, got.RMR)
	assert.Equal(t, r.RER, got.RER)
	assert.Equal(t, r.DataQuality, got.DataQuality)
	assert.Equal(t, r.Measurements, got.Measurements)

	rows, err := s.GetProvenance(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(analysis.ScoreNames))
	for i, name := range analysis.ScoreNames {
		assert.Equal(t, string(name), rows[i].Score)
		assert.Equal(t, string(prov.Sources[name].Tier), rows[i].Tier)
		assert.Equal(t, prov.Sources[name].Detail, rows[i].Detail)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	s := setupTestDB(t)

	_, err := s.GetReport(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReports(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		r, prov := scoredReport(t, name, base.AddDate(0, 0, i))
		require.NoError(t, s.SaveReport(ctx, r, prov))
	}

	count, err := s.CountReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	reports, err := s.ListReports(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "third", reports[0].Name)
	assert.Equal(t, "second", reports[1].Name)

	reports, err = s.ListReports(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "first", reports[0].Name)
}

func TestDeleteReport(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	r, prov := scoredReport(t, "to delete", time.Now().UTC())
	require.NoError(t, s.SaveReport(ctx, r, prov))

	require.NoError(t, s.DeleteReport(ctx, r.ID))

	_, err := s.GetReport(ctx, r.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	rows, err := s.GetProvenance(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, rows, "provenance should cascade")

	assert.ErrorIs(t, s.DeleteReport(ctx, r.ID), ErrReportNotFound)
}

func TestSaveReport_DuplicateID(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	r, prov := scoredReport(t, "dup", time.Now().UTC())
	require.NoError(t, s.SaveReport(ctx, r, prov))

	again := *r
	err := s.SaveReport(ctx, &again, prov)
	require.Error(t, err)

	// The failed insert must not leave partial rows behind
	count, err := s.CountReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReportRowToReport_BadTimestamp(t *testing.T) {
	_, err := reportRowToReport(sqlc.Report{ID: "r1", ScoredAt: "yesterday"})
	assert.ErrorContains(t, err, "parsing scored_at")
}

func TestGetReport_CorruptRow(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	r, prov := scoredReport(t, "corrupt", time.Now().UTC())
	require.NoError(t, s.SaveReport(ctx, r, prov))

	_, err := s.DB().ExecContext(ctx, `UPDATE reports SET measurements_json = '{' WHERE id = ?`, r.ID)
	require.NoError(t, err)

	_, err = s.GetReport(ctx, r.ID)
	assert.ErrorContains(t, err, "decoding measurements")
}
