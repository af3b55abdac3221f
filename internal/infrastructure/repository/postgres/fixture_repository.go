package postgres

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	fixtureQuery, fixtureArgs, err := qb.Select(fixtureColumns...).From("fixtures").
		OrderBy("week", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var fixtureRows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &fixtureRows, fixtureQuery, fixtureArgs...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}
	if len(fixtureRows) == 0 {
		return []fixture.Fixture{}, nil
	}

	matchQuery, matchArgs, err := qb.Select(matchColumns...).From("matches").
		OrderBy("fixture_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var matchRows []matchTableModel
	if err := r.db.SelectContext(ctx, &matchRows, matchQuery, matchArgs...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	return assembleFixtures(fixtureRows, matchRows), nil
}

func (r *FixtureRepository) FindFixtureIDByMatch(ctx context.Context, matchID int64) (int64, bool, error) {
	query, args, err := qb.Select("fixture_id").From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build select fixture by match query: %w", err)
	}

	var fixtureID int64
	if err := r.db.GetContext(ctx, &fixtureID, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select fixture by match: %w", err)
	}

	return fixtureID, true, nil
}

func (r *FixtureRepository) ReplaceSchedule(ctx context.Context, fixtures []fixture.Fixture) ([]fixture.Fixture, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx replace schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"matches", "fixtures"} {
		query, args, err := qb.DeleteFrom(table).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	out := fixture.CloneAll(fixtures)
	for i := range out {
		out[i].RefreshPlayed()

		query, args, err := qb.InsertModel("fixtures", fixtureInsertModel{
			Week:     out[i].Week,
			IsPlayed: out[i].IsPlayed,
		}, "RETURNING id")
		if err != nil {
			return nil, fmt.Errorf("build insert fixture query: %w", err)
		}
		if err := tx.GetContext(ctx, &out[i].ID, query, args...); err != nil {
			return nil, fmt.Errorf("insert fixture week=%d: %w", out[i].Week, err)
		}

		for j := range out[i].Matches {
			m := &out[i].Matches[j]
			query, args, err := qb.InsertModel("matches", newMatchInsertModel(out[i].ID, *m), "RETURNING id")
			if err != nil {
				return nil, fmt.Errorf("build insert match query: %w", err)
			}
			if err := tx.GetContext(ctx, &m.ID, query, args...); err != nil {
				if pqErrorCode(err) == pqForeignKeyViolation {
					return nil, errors.Wrapf(team.ErrInvalidTeam, "match %d v %d references an unknown team", m.HomeTeamID, m.AwayTeamID)
				}
				return nil, fmt.Errorf("insert match week=%d: %w", out[i].Week, err)
			}
			m.FixtureID = out[i].ID
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace schedule tx: %w", err)
	}
	return out, nil
}

func (r *FixtureRepository) UpdateFixture(ctx context.Context, fixtureID int64, mutate func(*fixture.Fixture) error) (fixture.Fixture, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("begin tx update fixture: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := r.lockFixture(ctx, tx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	working := current.Clone()
	if err := mutate(&working); err != nil {
		return fixture.Fixture{}, err
	}

	for _, m := range working.Matches {
		query, args, err := qb.Update("matches").
			Set("home_score", intPtrToNullInt64(m.HomeScore)).
			Set("away_score", intPtrToNullInt64(m.AwayScore)).
			Set("is_played", m.IsPlayed).
			SetExpr("updated_at", "NOW()").
			Where(qb.Eq("id", m.ID), qb.Eq("fixture_id", fixtureID)).
			ToSQL()
		if err != nil {
			return fixture.Fixture{}, fmt.Errorf("build update match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fixture.Fixture{}, fmt.Errorf("update match=%d: %w", m.ID, err)
		}
	}

	query, args, err := qb.Update("fixtures").
		Set("is_played", working.IsPlayed).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", fixtureID)).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build update fixture query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture=%d: %w", fixtureID, err)
	}

	if err := tx.Commit(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("commit update fixture tx: %w", err)
	}

	working.ID = fixtureID
	return working, nil
}

// lockFixture loads one fixture with its matches, holding a row lock until the tx ends.
func (r *FixtureRepository) lockFixture(ctx context.Context, tx *sqlx.Tx, fixtureID int64) (fixture.Fixture, error) {
	query, args, err := qb.Select(fixtureColumns...).From("fixtures").
		Where(qb.Eq("id", fixtureID)).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build lock fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, errors.Wrapf(fixture.ErrFixtureNotFound, "fixture=%d", fixtureID)
		}
		return fixture.Fixture{}, fmt.Errorf("lock fixture=%d: %w", fixtureID, err)
	}

	matchQuery, matchArgs, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build select fixture matches query: %w", err)
	}

	var matchRows []matchTableModel
	if err := tx.SelectContext(ctx, &matchRows, matchQuery, matchArgs...); err != nil {
		return fixture.Fixture{}, fmt.Errorf("select fixture=%d matches: %w", fixtureID, err)
	}

	return assembleFixtures([]fixtureTableModel{row}, matchRows)[0], nil
}

func (r *FixtureRepository) ResetResults(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx reset results: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	matchQuery, matchArgs, err := qb.Update("matches").
		SetExpr("home_score", "NULL").
		SetExpr("away_score", "NULL").
		Set("is_played", false).
		SetExpr("updated_at", "NOW()").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reset matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, matchQuery, matchArgs...); err != nil {
		return fmt.Errorf("reset matches: %w", err)
	}

	fixtureQuery, fixtureArgs, err := qb.Update("fixtures").
		Set("is_played", false).
		SetExpr("updated_at", "NOW()").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reset fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fixtureQuery, fixtureArgs...); err != nil {
		return fmt.Errorf("reset fixtures: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset results tx: %w", err)
	}
	return nil
}
