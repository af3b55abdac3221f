package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
)

var (
	fixtureColumns = []string{"id", "week", "is_played", "created_at", "updated_at"}
	matchColumns   = []string{
		"id",
		"fixture_id",
		"home_team_id",
		"away_team_id",
		"home_score",
		"away_score",
		"is_played",
		"created_at",
		"updated_at",
	}
)

type fixtureTableModel struct {
	ID        int64     `db:"id"`
	Week      int       `db:"week"`
	IsPlayed  bool      `db:"is_played"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type fixtureInsertModel struct {
	Week     int  `db:"week"`
	IsPlayed bool `db:"is_played"`
}

type matchTableModel struct {
	ID         int64         `db:"id"`
	FixtureID  int64         `db:"fixture_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	IsPlayed   bool          `db:"is_played"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	FixtureID  int64         `db:"fixture_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	IsPlayed   bool          `db:"is_played"`
}

func newMatchInsertModel(fixtureID int64, m fixture.Match) matchInsertModel {
	return matchInsertModel{
		FixtureID:  fixtureID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  intPtrToNullInt64(m.HomeScore),
		AwayScore:  intPtrToNullInt64(m.AwayScore),
		IsPlayed:   m.IsPlayed,
	}
}

func (m matchTableModel) toDomain() fixture.Match {
	return fixture.Match{
		ID:         m.ID,
		FixtureID:  m.FixtureID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  nullInt64ToIntPtr(m.HomeScore),
		AwayScore:  nullInt64ToIntPtr(m.AwayScore),
		IsPlayed:   m.IsPlayed,
	}
}

// assembleFixtures attaches matches to their fixtures, keeping the row order of both.
func assembleFixtures(fixtureRows []fixtureTableModel, matchRows []matchTableModel) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtureRows))
	indexByID := make(map[int64]int, len(fixtureRows))
	for _, row := range fixtureRows {
		indexByID[row.ID] = len(out)
		out = append(out, fixture.Fixture{
			ID:       row.ID,
			Week:     row.Week,
			IsPlayed: row.IsPlayed,
			Matches:  []fixture.Match{},
		})
	}

	for _, row := range matchRows {
		idx, ok := indexByID[row.FixtureID]
		if !ok {
			continue
		}
		out[idx].Matches = append(out[idx].Matches, row.toDomain())
	}

	return out
}
