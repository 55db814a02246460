package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kurumalab/carfit/internal/common"
	"github.com/kurumalab/carfit/internal/model"
)

// Categories returns all vehicle categories, ordered by name.
func (s *SQLiteStorage) Categories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// Models returns all vehicle models joined with their category names.
func (s *SQLiteStorage) Models(ctx context.Context) ([]model.CarModel, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT m.id, m.name, c.name, COALESCE(m.image_url, '')
		FROM car_models m
		JOIN categories c ON c.id = m.category_id
		ORDER BY m.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query models: %w", err)
	}
	defer rows.Close()

	var models []model.CarModel
	for rows.Next() {
		var m model.CarModel
		if err := rows.Scan(&m.ID, &m.Name, &m.CategoryName, &m.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating models: %w", err)
	}

	slog.Debug("retrieved models", "count", len(models))
	return models, nil
}

// gradeColumns is shared by Grades and GradeByID. Rank is derived from
// confirmed reservation counts: the most-reserved grade gets rank 1,
// grades without reservations rank last, ties share a rank.
const gradeQuery = `
	SELECT g.id, g.model_id, m.name, g.name, COALESCE(g.description, ''), COALESCE(g.image_url, ''),
	       g.base_price, g.fuel_cost_per_km, g.monthly_mainte_cost, g.monthly_insurance_cost,
	       g.monthly_parking_cost, g.monthly_price_drop_rate,
	       RANK() OVER (ORDER BY COUNT(r.id) DESC) AS popularity
	FROM car_grades g
	JOIN car_models m ON m.id = g.model_id
	LEFT JOIN reservations r ON r.grade_id = g.id
	GROUP BY g.id`

// Grades returns every grade with its static cost attributes and rank.
func (s *SQLiteStorage) Grades(ctx context.Context) ([]model.Grade, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, gradeQuery+` ORDER BY g.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grades: %w", err)
	}

	slog.Debug("retrieved grades", "count", len(grades))
	return grades, nil
}

// GradeByID returns one grade, or common.ErrNotFound.
func (s *SQLiteStorage) GradeByID(ctx context.Context, id int64) (*model.Grade, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "grade id"); err != nil {
		return nil, err
	}

	// Rank is a whole-catalog ordering, so filter after the window runs.
	query := `SELECT * FROM (` + gradeQuery + `) WHERE id = ?`
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query grade %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query grade %d: %w", id, err)
		}
		return nil, fmt.Errorf("grade %d: %w", id, common.ErrNotFound)
	}
	g, err := scanGrade(rows)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGrade(rows *sql.Rows) (model.Grade, error) {
	var g model.Grade
	if err := rows.Scan(
		&g.ID, &g.ModelID, &g.ModelName, &g.Name, &g.Description, &g.ImageURL,
		&g.BasePrice, &g.FuelCostPerKm, &g.MonthlyMainteCost, &g.MonthlyInsuranceCost,
		&g.MonthlyParkingCost, &g.MonthlyPriceDropRate, &g.Rank,
	); err != nil {
		return model.Grade{}, fmt.Errorf("failed to scan grade: %w", err)
	}
	return g, nil
}

// OptionsForGrade returns the option catalog of one kind applicable to the
// given grade. Colors apply to every grade and ignore the grade filter.
func (s *SQLiteStorage) OptionsForGrade(ctx context.Context, kind model.OptionKind, gradeID int64) ([]model.Option, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(gradeID, "grade id"); err != nil {
		return nil, err
	}

	var query string
	var args []any
	switch kind {
	case model.OptionColor:
		query = `SELECT id, name, price, COALESCE(image_url, '') FROM colors ORDER BY id`
	case model.OptionInterior:
		query = `
			SELECT i.id, i.name, i.price, COALESCE(i.image_url, '')
			FROM interiors i
			JOIN grade_interiors gi ON gi.interior_id = i.id
			WHERE gi.grade_id = ?
			ORDER BY i.id`
		args = append(args, gradeID)
	case model.OptionExterior:
		query = `
			SELECT e.id, e.name, e.price, COALESCE(e.image_url, '')
			FROM exteriors e
			JOIN grade_exteriors ge ON ge.exterior_id = e.id
			WHERE ge.grade_id = ?
			ORDER BY e.id`
		args = append(args, gradeID)
	default:
		return nil, fmt.Errorf("unknown option kind %q", kind)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s options: %w", kind, err)
	}
	defer rows.Close()

	var options []model.Option
	for rows.Next() {
		opt := model.Option{Kind: kind}
		if kind != model.OptionColor {
			opt.GradeID = gradeID
		}
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Price, &opt.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan %s option: %w", kind, err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s options: %w", kind, err)
	}
	return options, nil
}

