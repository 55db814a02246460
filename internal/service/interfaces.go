// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/kurumalab/carfit/internal/model"
)

// CatalogReader is the read contract over the vehicle reference data. The
// catalog is created once at seed time and read-only afterwards; every
// call returns a fresh snapshot.
type CatalogReader interface {
	// Categories returns all vehicle categories, ordered by name.
	Categories(ctx context.Context) ([]model.Category, error)
	// Models returns all vehicle models with their category names.
	Models(ctx context.Context) ([]model.CarModel, error)
	// Grades returns every grade with its static cost attributes and its
	// popularity rank derived from confirmed reservation counts.
	Grades(ctx context.Context) ([]model.Grade, error)
	// GradeByID returns one grade, or common.ErrNotFound.
	GradeByID(ctx context.Context, id int64) (*model.Grade, error)
	// OptionsForGrade returns the option catalog of one kind applicable
	// to the given grade. Colors apply to every grade.
	OptionsForGrade(ctx context.Context, kind model.OptionKind, gradeID int64) ([]model.Option, error)
}

// ReservationStore is the write contract for dealer reservations.
type ReservationStore interface {
	// SaveReservation persists the user, the reservation, and all option
	// links in one transaction. Any failure rolls back the whole write.
	SaveReservation(ctx context.Context, req model.ReservationRequest) (*model.Reservation, error)
}

// Storage is the full persistence contract.
type Storage interface {
	CatalogReader
	ReservationStore

	// Migrate brings the schema to the expected version.
	Migrate(ctx context.Context) error
	Close() error
}
