package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Vehicle catalog tables",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT UNIQUE NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS car_models (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					category_id INTEGER NOT NULL,
					name TEXT NOT NULL,
					image_url TEXT,
					FOREIGN KEY (category_id) REFERENCES categories(id)
				)`,
				`CREATE INDEX idx_car_models_category ON car_models(category_id)`,

				`CREATE TABLE IF NOT EXISTS car_grades (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					model_id INTEGER NOT NULL,
					name TEXT NOT NULL,
					description TEXT,
					image_url TEXT,
					base_price INTEGER NOT NULL CHECK (base_price >= 0),
					fuel_cost_per_km REAL NOT NULL DEFAULT 0,
					monthly_mainte_cost REAL NOT NULL DEFAULT 0,
					monthly_insurance_cost REAL NOT NULL DEFAULT 0,
					monthly_parking_cost REAL NOT NULL DEFAULT 0,
					monthly_price_drop_rate REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (model_id) REFERENCES car_models(id)
				)`,
				`CREATE INDEX idx_car_grades_model ON car_grades(model_id)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Option catalogs with stable identifiers",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				// Option ids are the primary keys assigned here, once,
				// at seed time. They are never recomputed on read.
				`CREATE TABLE IF NOT EXISTS colors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					price INTEGER NOT NULL DEFAULT 0,
					image_url TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS interiors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					price INTEGER NOT NULL DEFAULT 0,
					image_url TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS exteriors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					price INTEGER NOT NULL DEFAULT 0,
					image_url TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS grade_interiors (
					grade_id INTEGER NOT NULL,
					interior_id INTEGER NOT NULL,
					PRIMARY KEY (grade_id, interior_id),
					FOREIGN KEY (grade_id) REFERENCES car_grades(id),
					FOREIGN KEY (interior_id) REFERENCES interiors(id)
				)`,

				`CREATE TABLE IF NOT EXISTS grade_exteriors (
					grade_id INTEGER NOT NULL,
					exterior_id INTEGER NOT NULL,
					PRIMARY KEY (grade_id, exterior_id),
					FOREIGN KEY (grade_id) REFERENCES car_grades(id),
					FOREIGN KEY (exterior_id) REFERENCES exteriors(id)
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Users and reservations",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					email TEXT NOT NULL,
					region TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS reservations (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					reference TEXT UNIQUE NOT NULL,
					user_id INTEGER NOT NULL,
					grade_id INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (user_id) REFERENCES users(id),
					FOREIGN KEY (grade_id) REFERENCES car_grades(id)
				)`,
				`CREATE INDEX idx_reservations_grade ON reservations(grade_id)`,

				// Option links keep a NULL option id when the user made
				// no selection of that kind; see reservations.go.
				`CREATE TABLE IF NOT EXISTS reservation_colors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					reservation_id INTEGER NOT NULL,
					color_id INTEGER,
					FOREIGN KEY (reservation_id) REFERENCES reservations(id),
					FOREIGN KEY (color_id) REFERENCES colors(id)
				)`,

				`CREATE TABLE IF NOT EXISTS reservation_interiors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					reservation_id INTEGER NOT NULL,
					interior_id INTEGER,
					FOREIGN KEY (reservation_id) REFERENCES reservations(id),
					FOREIGN KEY (interior_id) REFERENCES interiors(id)
				)`,

				`CREATE TABLE IF NOT EXISTS reservation_exteriors (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					reservation_id INTEGER NOT NULL,
					exterior_id INTEGER,
					FOREIGN KEY (reservation_id) REFERENCES reservations(id),
					FOREIGN KEY (exterior_id) REFERENCES exteriors(id)
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion reports the current schema version of the database.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
