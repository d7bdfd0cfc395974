package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/pdxmph/planner-tui/internal/task"
)

// runMigrations applies any pending snapshot migrations
func (b *sqliteBackend) runMigrations() error {
	// Rewrite legacy numeric priorities to their enum names
	if err := b.runPriorityMigration(); err != nil {
		return err
	}

	return nil
}

// runPriorityMigration upgrades snapshots written before priorities
// became enum strings. Old snapshots stored the sort weight (1..3)
// directly in the priority field.
func (b *sqliteBackend) runPriorityMigration() error {
	var value string
	err := b.conn.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking snapshot for migration: %w", err)
	}

	// Decode loosely: legacy records fail the typed decode, so inspect
	// the raw records instead.
	var records []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		// Leave malformed snapshots alone; Load surfaces the error.
		return nil
	}

	migrated := false
	for _, rec := range records {
		raw, ok := rec["priority"]
		if !ok {
			continue
		}
		var weight int
		if err := json.Unmarshal(raw, &weight); err != nil {
			continue // already a string
		}
		name := task.PriorityLow
		switch weight {
		case 3:
			name = task.PriorityHigh
		case 2:
			name = task.PriorityMedium
		}
		named, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encoding priority name: %w", err)
		}
		rec["priority"] = named
		migrated = true
	}

	if !migrated {
		return nil
	}

	log.Println("Running migration: rewriting numeric priorities...")

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding migrated snapshot: %w", err)
	}

	tx, err := b.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE snapshots SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = ?`
	if _, err := tx.Exec(query, string(data), snapshotKey); err != nil {
		return fmt.Errorf("updating snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}

	log.Println("Migration completed successfully")
	return nil
}
