package output

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/models"
)

// SQLiteStore persists seed snapshots. Each save replaces the previous dataset.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS seed_runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		components INTEGER NOT NULL,
		pcbs INTEGER NOT NULL,
		production_entries INTEGER NOT NULL,
		consumption_records INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS components (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		part_number TEXT NOT NULL,
		current_stock_qty INTEGER NOT NULL,
		monthly_required_qty INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pcbs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pcb_components (
		pcb_id TEXT NOT NULL,
		component_id TEXT NOT NULL,
		quantity_per_component INTEGER NOT NULL,
		PRIMARY KEY (pcb_id, component_id)
	);

	CREATE TABLE IF NOT EXISTS production_entries (
		id TEXT PRIMARY KEY,
		pcb_name TEXT NOT NULL,
		quantity_to_produce INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS consumption_history (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		component_name TEXT NOT NULL,
		component_id TEXT NOT NULL,
		pcb_name TEXT NOT NULL,
		consumed_qty INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_consumption_date ON consumption_history(date);
	CREATE INDEX IF NOT EXISTS idx_consumption_pcb ON consumption_history(pcb_name);
	`
	_, err := db.Exec(schema)
	return err
}

var datasetTables = []string{"pcb_components", "consumption_history", "production_entries", "pcbs", "components"}

// Save replaces the stored dataset with data in one transaction and records the run.
func (s *SQLiteStore) Save(ctx context.Context, runID string, data *models.SeedData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range datasetTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range data.Components {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO components (id, name, part_number, current_stock_qty, monthly_required_qty, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.PartNumber, c.CurrentStockQty, c.MonthlyRequiredQty, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert component %s: %w", c.ID, err)
		}
	}

	for _, p := range data.PCBs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pcbs (id, name, created_at) VALUES (?, ?, ?)`,
			p.ID, p.Name, p.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert pcb %s: %w", p.ID, err)
		}
		for _, m := range p.Components {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO pcb_components (pcb_id, component_id, quantity_per_component) VALUES (?, ?, ?)`,
				p.ID, m.ComponentID, m.QuantityPerComponent); err != nil {
				return fmt.Errorf("failed to insert mapping %s/%s: %w", p.ID, m.ComponentID, err)
			}
		}
	}

	for _, e := range data.ProductionEntries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO production_entries (id, pcb_name, quantity_to_produce, created_at) VALUES (?, ?, ?, ?)`,
			e.ID, e.PCBName, e.QuantityToProduce, e.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert production entry %s: %w", e.ID, err)
		}
	}

	for _, r := range data.ConsumptionHistory {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO consumption_history (id, date, component_name, component_id, pcb_name, consumed_qty) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.Date, r.ComponentName, r.ComponentID, r.PCBName, r.ConsumedQty); err != nil {
			return fmt.Errorf("failed to insert consumption record %s: %w", r.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO seed_runs (id, created_at, components, pcbs, production_entries, consumption_records) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC(), len(data.Components), len(data.PCBs), len(data.ProductionEntries), len(data.ConsumptionHistory)); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// Counts returns the number of rows per dataset table.
func (s *SQLiteStore) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(datasetTables))
	for _, table := range datasetTables {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
