package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if !isNotFound(fmt.Errorf("select team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestPQErrorCode(t *testing.T) {
	err := fmt.Errorf("insert match: %w", &pq.Error{Code: pqForeignKeyViolation})
	if got := pqErrorCode(err); got != pqForeignKeyViolation {
		t.Fatalf("unexpected code: %q", got)
	}
	if got := pqErrorCode(fmt.Errorf("plain")); got != "" {
		t.Fatalf("expected empty code, got %q", got)
	}
}

func TestNullableScores(t *testing.T) {
	t.Run("null maps to nil", func(t *testing.T) {
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil, got %d", *got)
		}
		if got := intPtrToNullInt64(nil); got.Valid {
			t.Fatalf("expected invalid null int")
		}
	})

	t.Run("values survive the round trip", func(t *testing.T) {
		score := 3
		got := nullInt64ToIntPtr(intPtrToNullInt64(&score))
		if got == nil || *got != 3 {
			t.Fatalf("unexpected score: %v", got)
		}
	})
}

func TestAssembleFixtures(t *testing.T) {
	fixtures := []fixtureTableModel{
		{ID: 10, Week: 1, IsPlayed: true},
		{ID: 11, Week: 2},
	}
	matches := []matchTableModel{
		{ID: 1, FixtureID: 10, HomeTeamID: 1, AwayTeamID: 2, HomeScore: sql.NullInt64{Int64: 2, Valid: true}, AwayScore: sql.NullInt64{Int64: 0, Valid: true}, IsPlayed: true},
		{ID: 2, FixtureID: 10, HomeTeamID: 4, AwayTeamID: 3, HomeScore: sql.NullInt64{Int64: 1, Valid: true}, AwayScore: sql.NullInt64{Int64: 1, Valid: true}, IsPlayed: true},
		{ID: 3, FixtureID: 11, HomeTeamID: 1, AwayTeamID: 4},
		{ID: 4, FixtureID: 99, HomeTeamID: 3, AwayTeamID: 2},
	}

	got := assembleFixtures(fixtures, matches)
	if len(got) != 2 {
		t.Fatalf("unexpected fixture count: %d", len(got))
	}
	if len(got[0].Matches) != 2 || got[0].Matches[1].Result() != "1 - 1" {
		t.Fatalf("unexpected week 1 matches: %+v", got[0].Matches)
	}
	if len(got[1].Matches) != 1 || got[1].Matches[0].Result() != "vs" {
		t.Fatalf("unexpected week 2 matches: %+v", got[1].Matches)
	}
}
