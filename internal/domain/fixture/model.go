package fixture

import "strconv"

// UnplayedResult is shown in place of a score for matches not yet played.
const UnplayedResult = "vs"

// Fixture is one week of the schedule.
type Fixture struct {
	ID       int64
	Week     int
	IsPlayed bool
	Matches  []Match
}

// Match is a single home/away pairing inside a fixture.
type Match struct {
	ID         int64
	FixtureID  int64
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  *int
	AwayScore  *int
	IsPlayed   bool
}

func (m *Match) RecordScore(home, away int) {
	m.HomeScore = &home
	m.AwayScore = &away
	m.IsPlayed = true
}

func (m *Match) ClearScore() {
	m.HomeScore = nil
	m.AwayScore = nil
	m.IsPlayed = false
}

func (m Match) Result() string {
	if !m.IsPlayed || m.HomeScore == nil || m.AwayScore == nil {
		return UnplayedResult
	}
	return strconv.Itoa(*m.HomeScore) + " - " + strconv.Itoa(*m.AwayScore)
}

// WinnerTeamID returns false for draws and unplayed matches.
func (m Match) WinnerTeamID() (int64, bool) {
	if !m.IsPlayed || m.HomeScore == nil || m.AwayScore == nil {
		return 0, false
	}
	switch {
	case *m.HomeScore > *m.AwayScore:
		return m.HomeTeamID, true
	case *m.AwayScore > *m.HomeScore:
		return m.AwayTeamID, true
	default:
		return 0, false
	}
}

// RefreshPlayed recomputes IsPlayed from the match flags.
func (f *Fixture) RefreshPlayed() {
	if len(f.Matches) == 0 {
		f.IsPlayed = false
		return
	}
	for _, m := range f.Matches {
		if !m.IsPlayed {
			f.IsPlayed = false
			return
		}
	}
	f.IsPlayed = true
}

func (f *Fixture) ClearResults() {
	for i := range f.Matches {
		f.Matches[i].ClearScore()
	}
	f.IsPlayed = false
}

func (f *Fixture) MatchIndex(matchID int64) int {
	for i := range f.Matches {
		if f.Matches[i].ID == matchID {
			return i
		}
	}
	return -1
}

// Clone deep-copies the fixture so callers can mutate it freely.
func (f Fixture) Clone() Fixture {
	out := f
	out.Matches = make([]Match, len(f.Matches))
	for i, m := range f.Matches {
		out.Matches[i] = m.clone()
	}
	return out
}

func (m Match) clone() Match {
	out := m
	if m.HomeScore != nil {
		v := *m.HomeScore
		out.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		out.AwayScore = &v
	}
	return out
}

func CloneAll(fixtures []Fixture) []Fixture {
	out := make([]Fixture, len(fixtures))
	for i, f := range fixtures {
		out[i] = f.Clone()
	}
	return out
}

// AllMatches flattens fixtures into their matches, keeping week order.
func AllMatches(fixtures []Fixture) []Match {
	out := make([]Match, 0, len(fixtures)*2)
	for _, f := range fixtures {
		out = append(out, f.Matches...)
	}
	return out
}

// MaxPlayedWeek returns 0 when no fixture is fully played.
func MaxPlayedWeek(fixtures []Fixture) int {
	week := 0
	for _, f := range fixtures {
		if f.IsPlayed && f.Week > week {
			week = f.Week
		}
	}
	return week
}

func AllPlayed(fixtures []Fixture) bool {
	for _, f := range fixtures {
		if !f.IsPlayed {
			return false
		}
	}
	return true
}
