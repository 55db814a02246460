package model

import (
	"fmt"
	"strings"
	"time"
)

// ReservationRequest is the input contract for a dealer reservation with
// optional customizations. Option id lists may be empty; the storage layer
// encodes an empty list as a single null-marker row for compatibility with
// the existing persistence shape.
type ReservationRequest struct {
	UserName    string
	UserEmail   string
	UserRegion  string
	GradeID     int64
	ColorIDs    []int64
	InteriorIDs []int64
	ExteriorIDs []int64
}

// Validate checks the request before it reaches storage.
func (r ReservationRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return fmt.Errorf("user name must be set")
	}
	if !strings.Contains(r.UserEmail, "@") {
		return fmt.Errorf("user email looks invalid: %q", r.UserEmail)
	}
	if strings.TrimSpace(r.UserRegion) == "" {
		return fmt.Errorf("user region must be set")
	}
	if r.GradeID <= 0 {
		return fmt.Errorf("grade id must be positive, got %d", r.GradeID)
	}
	return nil
}

// Reservation is a persisted dealer-reservation record. Reference is the
// externally visible code handed to the user.
type Reservation struct {
	CreatedAt time.Time
	Reference string
	ID        int64
	UserID    int64
	GradeID   int64
}
