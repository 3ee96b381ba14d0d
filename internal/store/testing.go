package store

import (
	"database/sql"
)

// NewTestStore creates a Store for testing on an already open database,
// typically ":memory:". Migrations are applied.
// This is only intended for use in tests.
func NewTestStore(sqlDB *sql.DB) (*Store, error) {
	if err := prepare(sqlDB); err != nil {
		return nil, err
	}
	return newStore(sqlDB), nil
}
