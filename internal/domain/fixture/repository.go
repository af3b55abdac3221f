package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	// List returns fixtures ordered by week with matches ordered by id.
	List(ctx context.Context) ([]Fixture, error)
	FindFixtureIDByMatch(ctx context.Context, matchID int64) (int64, bool, error)
	// ReplaceSchedule atomically drops every stored fixture and match and stores the given ones.
	ReplaceSchedule(ctx context.Context, fixtures []Fixture) ([]Fixture, error)
	// UpdateFixture locks one fixture, applies mutate to a copy and persists it.
	// Nothing is written when mutate returns an error.
	UpdateFixture(ctx context.Context, fixtureID int64, mutate func(*Fixture) error) (Fixture, error)
	// ResetResults clears every score and played flag, keeping fixtures and matches.
	ResetResults(ctx context.Context) error
}
