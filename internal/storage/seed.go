package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
)

// SeedDocument is the JSON shape of a catalog seed file. Identifiers are
// explicit so option links can reference them; they become the durable
// primary keys.
type SeedDocument struct {
	Categories []SeedCategory `json:"categories"`
	Models     []SeedModel    `json:"models"`
	Grades     []SeedGrade    `json:"grades"`
	Colors     []SeedOption   `json:"colors"`
	Interiors  []SeedOption   `json:"interiors"`
	Exteriors  []SeedOption   `json:"exteriors"`
}

// SeedCategory seeds one row of the categories table.
type SeedCategory struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// SeedModel seeds one vehicle model.
type SeedModel struct {
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
}

// SeedGrade seeds one grade with its static cost attributes.
type SeedGrade struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	ImageURL             string  `json:"image_url"`
	ID                   int64   `json:"id"`
	ModelID              int64   `json:"model_id"`
	BasePrice            int64   `json:"base_price"`
	FuelCostPerKm        float64 `json:"fuel_cost_per_km"`
	MonthlyMainteCost    float64 `json:"monthly_mainte_cost"`
	MonthlyInsuranceCost float64 `json:"monthly_insurance_cost"`
	MonthlyParkingCost   float64 `json:"monthly_parking_cost"`
	MonthlyPriceDropRate float64 `json:"monthly_price_drop_rate"`
}

// SeedOption seeds one color/interior/exterior. GradeIDs lists the grades
// an interior or exterior applies to; colors leave it empty.
type SeedOption struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	ID       int64   `json:"id"`
	Price    int64   `json:"price"`
	GradeIDs []int64 `json:"grade_ids,omitempty"`
}

// LoadSeedFile parses a seed document from disk.
func LoadSeedFile(path string) (*SeedDocument, error) {
	if err := validateString(path, "seed path"); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var doc SeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &doc, nil
}

func (d *SeedDocument) validate() error {
	for _, g := range d.Grades {
		if g.BasePrice < 0 {
			return fmt.Errorf("grade %d: base price must be non-negative, got %d", g.ID, g.BasePrice)
		}
		if g.MonthlyPriceDropRate < 0 || g.MonthlyPriceDropRate >= 1 {
			return fmt.Errorf("grade %d: monthly price drop rate must be in [0, 1), got %v", g.ID, g.MonthlyPriceDropRate)
		}
		if g.FuelCostPerKm < 0 || g.MonthlyMainteCost < 0 || g.MonthlyInsuranceCost < 0 || g.MonthlyParkingCost < 0 {
			return fmt.Errorf("grade %d: cost attributes must be non-negative", g.ID)
		}
	}
	return nil
}

func (d *SeedDocument) recordCount() int {
	n := len(d.Categories) + len(d.Models) + len(d.Grades) + len(d.Colors)
	for _, opt := range d.Interiors {
		n += 1 + len(opt.GradeIDs)
	}
	for _, opt := range d.Exteriors {
		n += 1 + len(opt.GradeIDs)
	}
	return n
}

// Seed loads a catalog document into an empty, migrated database. A
// database that already holds grades is refused with ErrAlreadySeeded.
// The whole import is one transaction.
func (s *SQLiteStorage) Seed(ctx context.Context, doc *SeedDocument) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("seed document cannot be nil")
	}
	if err := doc.validate(); err != nil {
		return err
	}

	var gradeCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM car_grades`).Scan(&gradeCount); err != nil {
		return fmt.Errorf("failed to count grades: %w", err)
	}
	if gradeCount > 0 {
		return ErrAlreadySeeded
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	bar := progressbar.Default(int64(doc.recordCount()), "seeding catalog")

	for _, c := range doc.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("failed to insert category %q: %w", c.Name, err)
		}
		_ = bar.Add(1)
	}
	for _, m := range doc.Models {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO car_models (id, category_id, name, image_url) VALUES (?, ?, ?, ?)`,
			m.ID, m.CategoryID, m.Name, m.ImageURL); err != nil {
			return fmt.Errorf("failed to insert model %q: %w", m.Name, err)
		}
		_ = bar.Add(1)
	}
	for _, g := range doc.Grades {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO car_grades (id, model_id, name, description, image_url, base_price,
			 fuel_cost_per_km, monthly_mainte_cost, monthly_insurance_cost, monthly_parking_cost, monthly_price_drop_rate)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.ModelID, g.Name, g.Description, g.ImageURL, g.BasePrice,
			g.FuelCostPerKm, g.MonthlyMainteCost, g.MonthlyInsuranceCost, g.MonthlyParkingCost, g.MonthlyPriceDropRate); err != nil {
			return fmt.Errorf("failed to insert grade %q: %w", g.Name, err)
		}
		_ = bar.Add(1)
	}
	for _, c := range doc.Colors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO colors (id, name, price, image_url) VALUES (?, ?, ?, ?)`,
			c.ID, c.Name, c.Price, c.ImageURL); err != nil {
			return fmt.Errorf("failed to insert color %q: %w", c.Name, err)
		}
		_ = bar.Add(1)
	}
	if err := seedLinkedOptions(ctx, tx, bar, "interiors", "grade_interiors", "interior_id", doc.Interiors); err != nil {
		return err
	}
	if err := seedLinkedOptions(ctx, tx, bar, "exteriors", "grade_exteriors", "exterior_id", doc.Exteriors); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("seeded catalog",
		"categories", len(doc.Categories),
		"models", len(doc.Models),
		"grades", len(doc.Grades),
		"colors", len(doc.Colors),
		"interiors", len(doc.Interiors),
		"exteriors", len(doc.Exteriors))
	return nil
}

type txLike interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func seedLinkedOptions(ctx context.Context, tx txLike, bar *progressbar.ProgressBar, table, linkTable, linkColumn string, options []SeedOption) error {
	insert := fmt.Sprintf(`INSERT INTO %s (id, name, price, image_url) VALUES (?, ?, ?, ?)`, table)
	link := fmt.Sprintf(`INSERT INTO %s (grade_id, %s) VALUES (?, ?)`, linkTable, linkColumn)
	for _, opt := range options {
		if _, err := tx.ExecContext(ctx, insert, opt.ID, opt.Name, opt.Price, opt.ImageURL); err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", table, opt.Name, err)
		}
		_ = bar.Add(1)
		for _, gradeID := range opt.GradeIDs {
			if _, err := tx.ExecContext(ctx, link, gradeID, opt.ID); err != nil {
				return fmt.Errorf("failed to link %s %q to grade %d: %w", table, opt.Name, gradeID, err)
			}
			_ = bar.Add(1)
		}
	}
	return nil
}
