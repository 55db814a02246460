package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kurumalab/carfit/internal/common"
	"github.com/kurumalab/carfit/internal/model"
)

// SaveReservation persists the user, the reservation, and every option
// link in a single transaction. Any failure rolls back the whole write and
// surfaces as ErrReservationWriteFailed, so a half-written customization
// can never be observed.
func (s *SQLiteStorage) SaveReservation(ctx context.Context, req model.ReservationRequest) (*model.Reservation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM car_grades WHERE id = ?)`, req.GradeID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check grade %d: %w", req.GradeID, err)
	}
	if !exists {
		return nil, fmt.Errorf("grade %d: %w", req.GradeID, common.ErrNotFound)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", ErrReservationWriteFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email, region, created_at) VALUES (?, ?, ?, ?)`,
		req.UserName, req.UserEmail, req.UserRegion, now)
	if err != nil {
		return nil, fmt.Errorf("%w: user insert: %v", ErrReservationWriteFailed, err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: user id: %v", ErrReservationWriteFailed, err)
	}

	reference := uuid.NewString()
	res, err = tx.ExecContext(ctx,
		`INSERT INTO reservations (reference, user_id, grade_id, created_at) VALUES (?, ?, ?, ?)`,
		reference, userID, req.GradeID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation insert: %v", ErrReservationWriteFailed, err)
	}
	reservationID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id: %v", ErrReservationWriteFailed, err)
	}

	links := []struct {
		table  string
		column string
		ids    []int64
	}{
		{table: "reservation_colors", column: "color_id", ids: req.ColorIDs},
		{table: "reservation_interiors", column: "interior_id", ids: req.InteriorIDs},
		{table: "reservation_exteriors", column: "exterior_id", ids: req.ExteriorIDs},
	}
	for _, link := range links {
		query := fmt.Sprintf(`INSERT INTO %s (reservation_id, %s) VALUES (?, ?)`, link.table, link.column)
		for _, id := range normalizeOptionIDs(link.ids) {
			if _, err := tx.ExecContext(ctx, query, reservationID, id); err != nil {
				return nil, fmt.Errorf("%w: %s insert: %v", ErrReservationWriteFailed, link.table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrReservationWriteFailed, err)
	}

	slog.Info("saved reservation",
		"reference", reference,
		"grade_id", req.GradeID,
		"colors", len(req.ColorIDs),
		"interiors", len(req.InteriorIDs),
		"exteriors", len(req.ExteriorIDs))

	return &model.Reservation{
		ID:        reservationID,
		Reference: reference,
		UserID:    userID,
		GradeID:   req.GradeID,
		CreatedAt: now,
	}, nil
}

// normalizeOptionIDs encodes the option-list persistence convention: the
// absence of a selection is stored as a single NULL-marker row, not as
// zero rows. Existing readers of these tables depend on it.
func normalizeOptionIDs(ids []int64) []sql.NullInt64 {
	if len(ids) == 0 {
		return []sql.NullInt64{{}}
	}
	out := make([]sql.NullInt64, 0, len(ids))
	for _, id := range ids {
		out = append(out, sql.NullInt64{Int64: id, Valid: true})
	}
	return out
}

// ReservationCountByGrade reports confirmed reservation counts, the source
// of the popularity rank.
func (s *SQLiteStorage) ReservationCountByGrade(ctx context.Context) (map[int64]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT grade_id, COUNT(*) FROM reservations GROUP BY grade_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var gradeID int64
		var count int
		if err := rows.Scan(&gradeID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reservation count: %w", err)
		}
		counts[gradeID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation counts: %w", err)
	}
	return counts, nil
}
