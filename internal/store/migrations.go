package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Scored reports, one row per extraction
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			source_file TEXT,
			scored_at TEXT NOT NULL,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			weight_kg REAL NOT NULL,
			height_cm REAL NOT NULL,
			activity_level TEXT,
			metabolic_rate INTEGER NOT NULL,
			fat_burning INTEGER NOT NULL,
			lung_util INTEGER NOT NULL,
			hrv INTEGER NOT NULL,
			symp_parasym INTEGER NOT NULL,
			ventilation_eff INTEGER NOT NULL,
			breathing_coord INTEGER NOT NULL,
			fat_percent INTEGER NOT NULL,
			carb_percent INTEGER NOT NULL,
			predicted_rmr REAL NOT NULL,
			resolved_rmr REAL NOT NULL,
			resolved_rer REAL NOT NULL,
			data_quality TEXT NOT NULL,
			measurements_json TEXT,
			notes_json TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_reports_scored_at ON reports(scored_at)`,

		// Where each score's input came from
		`CREATE TABLE IF NOT EXISTS score_provenance (
			report_id TEXT NOT NULL,
			score TEXT NOT NULL,
			tier TEXT NOT NULL,
			detail TEXT,
			PRIMARY KEY (report_id, score),
			FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_score_provenance_tier ON score_provenance(tier)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
