package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

func leagueTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Real Madrid", ShortName: "RMA", Power: 90, HomeAdvantage: 16, GoalkeeperFactor: 17, SupporterStrength: 18},
		{ID: 2, Name: "Liverpool", ShortName: "LIV", Power: 85, HomeAdvantage: 15, GoalkeeperFactor: 16, SupporterStrength: 17},
		{ID: 3, Name: "Bayern Munich", ShortName: "BAY", Power: 82, HomeAdvantage: 14, GoalkeeperFactor: 15, SupporterStrength: 15},
		{ID: 4, Name: "Galatasaray", ShortName: "GAL", Power: 72, HomeAdvantage: 18, GoalkeeperFactor: 12, SupporterStrength: 19},
	}
}

// storedSchedule returns a generated schedule with ids assigned the way a repository would.
func storedSchedule(t *testing.T) []fixture.Fixture {
	t.Helper()

	rounds, err := fixture.GenerateRoundRobin(leagueTeams())
	if err != nil {
		t.Fatalf("generate round robin: %v", err)
	}

	return assignIDs(fixture.BuildSchedule(rounds))
}

func assignIDs(fixtures []fixture.Fixture) []fixture.Fixture {
	var matchID int64
	for i := range fixtures {
		fixtures[i].ID = int64(i + 1)
		for j := range fixtures[i].Matches {
			matchID++
			fixtures[i].Matches[j].ID = matchID
			fixtures[i].Matches[j].FixtureID = fixtures[i].ID
		}
	}
	return fixtures
}

// recordWeeks marks the first n weeks played with fixed home wins.
func recordWeeks(fixtures []fixture.Fixture, n int) []fixture.Fixture {
	for i := 0; i < n && i < len(fixtures); i++ {
		for j := range fixtures[i].Matches {
			fixtures[i].Matches[j].RecordScore(2, 1)
		}
		fixtures[i].RefreshPlayed()
	}
	return fixtures
}

// applyTo emulates a repository UpdateFixture against an in-test schedule.
func applyTo(fixtures []fixture.Fixture) func(context.Context, int64, func(*fixture.Fixture) error) (fixture.Fixture, error) {
	return func(_ context.Context, fixtureID int64, mutate func(*fixture.Fixture) error) (fixture.Fixture, error) {
		for i := range fixtures {
			if fixtures[i].ID != fixtureID {
				continue
			}
			working := fixtures[i].Clone()
			if err := mutate(&working); err != nil {
				return fixture.Fixture{}, err
			}
			fixtures[i] = working
			return working.Clone(), nil
		}
		return fixture.Fixture{}, fixture.ErrFixtureNotFound
	}
}
