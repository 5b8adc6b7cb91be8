package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// dialect holds the few statements that differ between databases.
type dialect struct {
	createMigrationTable string
	insertMigration      string
}

func migrate(ctx context.Context, db *sql.DB, d dialect, wanted []string) error {
	if _, err := db.ExecContext(ctx, d.createMigrationTable); err != nil {
		return err
	}

	// find existing
	rows, err := db.QueryContext(ctx, `SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for _, query := range missing {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}

		// register
		if _, err := db.ExecContext(ctx, d.insertMigration, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
