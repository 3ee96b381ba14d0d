package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"metabolic-report/internal/analysis"
	"metabolic-report/internal/extract"
	"metabolic-report/internal/store"

	"github.com/sirupsen/logrus"
)

// ScoringService turns extractions into stored reports
type ScoringService struct {
	store  *store.Store
	scorer *analysis.Scorer
	log    logrus.FieldLogger
}

// NewScoringService creates a scoring service. A nil store scores without
// persisting; a nil logger discards output.
func NewScoringService(st *store.Store, tables analysis.Tables, log logrus.FieldLogger) *ScoringService {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &ScoringService{
		store:  st,
		scorer: analysis.NewScorer(tables, log),
		log:    log,
	}
}

// ScoredReport is a report together with its full provenance
type ScoredReport struct {
	Report     store.Report
	Provenance analysis.Provenance
}

// ScoreProgress reports progress while scoring a batch
type ScoreProgress struct {
	Total     int
	Completed int
	Current   string
	Error     error
}

// ScoreResult contains the results of a batch
type ScoreResult struct {
	Scored []*ScoredReport
	Errors []error
}

// ScoreFiles scores each file in turn. A bad file is recorded in
// Errors and does not stop the batch; cancellation does.
func (s *ScoringService) ScoreFiles(ctx context.Context, paths []string, progress chan<- ScoreProgress) (*ScoreResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &ScoreResult{}
	for i, path := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		report, err := s.ScoreFile(ctx, path)
		if err != nil {
			result.Errors = append(result.Errors, err)
		} else {
			result.Scored = append(result.Scored, report)
		}

		if progress != nil {
			progress <- ScoreProgress{
				Total:     len(paths),
				Completed: i + 1,
				Current:   filepath.Base(path),
				Error:     err,
			}
		}
	}

	return result, nil
}

// ScoreFile reads an extraction from disk and scores it
func (s *ScoringService) ScoreFile(ctx context.Context, path string) (*ScoredReport, error) {
	doc, err := extract.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Score(ctx, doc)
}

// Score computes and, when a store is configured, persists a report.
// The only scoring error is analysis.ErrInvalidProfile.
func (s *ScoringService) Score(ctx context.Context, doc *extract.Document) (*ScoredReport, error) {
	log := s.log.WithField("source", doc.Source)

	if unknown := doc.UnknownKeys(); len(unknown) > 0 {
		log.WithField("keys", unknown).Debug("ignoring unrecognized extraction keys")
	}

	profile, err := doc.Profile().Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reportName(doc.Source), err)
	}
	raw := doc.Measurements()

	res, err := s.scorer.Compute(profile, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reportName(doc.Source), err)
	}

	scored := &ScoredReport{
		Report: store.Report{
			Name:         reportName(doc.Source),
			SourceFile:   doc.Source,
			Profile:      profile,
			Scores:       res.Scores,
			Fuel:         res.Fuel,
			PredictedRMR: res.PredictedRMR,
			RMR:          res.RMR,
			RER:          res.RER,
			DataQuality:  res.Provenance.DataQuality(),
			Measurements: raw,
			Notes:        res.Provenance.Notes,
		},
		Provenance: res.Provenance,
	}

	if s.store != nil {
		if err := s.store.SaveReport(ctx, &scored.Report, res.Provenance); err != nil {
			return nil, fmt.Errorf("saving report: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"report":  scored.Report.ID,
		"quality": scored.Report.DataQuality,
		"notes":   len(scored.Report.Notes),
	}).Info("scored report")

	return scored, nil
}

// reportName derives a display name from the source file name
func reportName(source string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	name = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if name == "" || name == "." {
		return UntitledReport
	}
	return name
}
