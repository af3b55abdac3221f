package fixture

import (
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

const (
	ScheduleTeamCount = 4
	ScheduleWeeks     = 6
)

// Pairing is one scheduled home/away meeting.
type Pairing struct {
	Home team.Team
	Away team.Team
}

// Round holds the pairings of one week.
type Round struct {
	Week     int
	Pairings []Pairing
}

// GenerateRoundRobin builds a double round-robin for exactly four teams with
// the circle method. Teams are expected in stable id order. The first team stays
// fixed while the other three rotate; weeks 4-6 mirror weeks 1-3 with home and
// away swapped.
func GenerateRoundRobin(teams []team.Team) ([]Round, error) {
	if len(teams) != ScheduleTeamCount {
		return nil, errors.Wrapf(ErrInvalidTeamCount, "got %d team(s)", len(teams))
	}

	fixed := teams[0]
	rotating := []team.Team{teams[1], teams[2], teams[3]}

	half := ScheduleWeeks / 2
	rounds := make([]Round, 0, ScheduleWeeks)
	for r := 0; r < half; r++ {
		rounds = append(rounds, Round{
			Week: r + 1,
			Pairings: []Pairing{
				{Home: fixed, Away: rotating[0]},
				{Home: rotating[2], Away: rotating[1]},
			},
		})
		rotating = []team.Team{rotating[2], rotating[0], rotating[1]}
	}

	for r := 0; r < half; r++ {
		first := rounds[r]
		mirrored := make([]Pairing, 0, len(first.Pairings))
		for _, p := range first.Pairings {
			mirrored = append(mirrored, Pairing{Home: p.Away, Away: p.Home})
		}
		rounds = append(rounds, Round{Week: half + r + 1, Pairings: mirrored})
	}

	return rounds, nil
}

// BuildSchedule turns rounds into unsaved, unplayed fixtures.
func BuildSchedule(rounds []Round) []Fixture {
	out := make([]Fixture, 0, len(rounds))
	for _, round := range rounds {
		item := Fixture{Week: round.Week, Matches: make([]Match, 0, len(round.Pairings))}
		for _, p := range round.Pairings {
			item.Matches = append(item.Matches, Match{
				HomeTeamID: p.Home.ID,
				AwayTeamID: p.Away.ID,
			})
		}
		out = append(out, item)
	}
	return out
}
