package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurumalab/carfit/internal/common"
	"github.com/kurumalab/carfit/internal/model"
)

func testRequest() model.ReservationRequest {
	return model.ReservationRequest{
		UserName:    "Hanako Yamada",
		UserEmail:   "hanako@example.com",
		UserRegion:  "Osaka",
		GradeID:     10,
		ColorIDs:    []int64{1},
		InteriorIDs: []int64{1},
	}
}

func countRows(t *testing.T, s *SQLiteStorage, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSaveReservation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	res, err := s.SaveReservation(ctx, testRequest())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Reference)
	assert.Equal(t, int64(10), res.GradeID)
	assert.Positive(t, res.ID)
	assert.Positive(t, res.UserID)

	assert.Equal(t, 1, countRows(t, s, "users"))
	assert.Equal(t, 1, countRows(t, s, "reservations"))
	assert.Equal(t, 1, countRows(t, s, "reservation_colors"))
	assert.Equal(t, 1, countRows(t, s, "reservation_interiors"))
	// Empty exterior selection still writes its null-marker row.
	assert.Equal(t, 1, countRows(t, s, "reservation_exteriors"))
}

func TestSaveReservation_EmptySelectionsUseNullMarker(t *testing.T) {
	s := newTestStorage(t)

	req := testRequest()
	req.ColorIDs = nil
	req.InteriorIDs = nil
	req.ExteriorIDs = nil

	res, err := s.SaveReservation(context.Background(), req)
	require.NoError(t, err)

	for _, tc := range []struct {
		table  string
		column string
	}{
		{table: "reservation_colors", column: "color_id"},
		{table: "reservation_interiors", column: "interior_id"},
		{table: "reservation_exteriors", column: "exterior_id"},
	} {
		var got sql.NullInt64
		err := s.db.QueryRow(
			"SELECT "+tc.column+" FROM "+tc.table+" WHERE reservation_id = ?", res.ID,
		).Scan(&got)
		require.NoError(t, err, tc.table)
		assert.False(t, got.Valid, "%s: empty selection must be one NULL row, not zero rows", tc.table)
	}
}

func TestSaveReservation_UnknownGrade(t *testing.T) {
	s := newTestStorage(t)

	req := testRequest()
	req.GradeID = 999
	_, err := s.SaveReservation(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, countRows(t, s, "users"))
}

func TestSaveReservation_InvalidRequest(t *testing.T) {
	s := newTestStorage(t)

	req := testRequest()
	req.UserEmail = "not-an-email"
	_, err := s.SaveReservation(context.Background(), req)
	assert.Error(t, err)
}

func TestSaveReservation_RollsBackOnFailure(t *testing.T) {
	s := newTestStorage(t)

	// A color id that violates the foreign key fails mid-transaction;
	// the already-inserted user and reservation rows must not survive.
	req := testRequest()
	req.ColorIDs = []int64{999}

	_, err := s.SaveReservation(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationWriteFailed)

	assert.Equal(t, 0, countRows(t, s, "users"))
	assert.Equal(t, 0, countRows(t, s, "reservations"))
	assert.Equal(t, 0, countRows(t, s, "reservation_colors"))
}

func TestNormalizeOptionIDs(t *testing.T) {
	empty := normalizeOptionIDs(nil)
	require.Len(t, empty, 1)
	assert.False(t, empty[0].Valid)

	filled := normalizeOptionIDs([]int64{3, 7})
	require.Len(t, filled, 2)
	assert.Equal(t, sql.NullInt64{Int64: 3, Valid: true}, filled[0])
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, filled[1])
}

func TestReservationCountByGrade(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	counts, err := s.ReservationCountByGrade(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	_, err = s.SaveReservation(ctx, testRequest())
	require.NoError(t, err)
	_, err = s.SaveReservation(ctx, testRequest())
	require.NoError(t, err)

	counts, err = s.ReservationCountByGrade(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{10: 2}, counts)
}
