package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/league-simulator/internal/platform/querybuilder"
)

// BootstrapSeed inserts the default clubs when the teams table is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		query, args, err := qb.InsertModel("teams", newTeamInsertModel(t), "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return fmt.Errorf("build seed team %s query: %w", t.ShortName, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ShortName, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('teams', 'id'), (SELECT MAX(id) FROM teams))`); err != nil {
		return fmt.Errorf("advance teams sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
