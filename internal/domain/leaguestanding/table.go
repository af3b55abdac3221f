package leaguestanding

import (
	"sort"

	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

// ResultsFromMatches keeps the played matches only.
func ResultsFromMatches(matches []fixture.Match) []Result {
	out := make([]Result, 0, len(matches))
	for _, m := range matches {
		if !m.IsPlayed || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		out = append(out, Result{
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  *m.HomeScore,
			AwayScore:  *m.AwayScore,
		})
	}
	return out
}

// ComputeTable ranks teams over the played matches in matches.
func ComputeTable(teams []team.Team, matches []fixture.Match) []Standing {
	return ComputeTableFromResults(teams, ResultsFromMatches(matches))
}

// ComputeTableFromResults ranks teams over raw results. Teams level on points
// are ordered by goal difference, goals scored, then the points and goal
// difference of a mini-league made of the matches between the tied teams only,
// and finally by name.
func ComputeTableFromResults(teams []team.Team, results []Result) []Standing {
	rows := make([]Standing, len(teams))
	indexByID := make(map[int64]int, len(teams))
	for i, t := range teams {
		rows[i] = Standing{TeamID: t.ID, TeamName: t.Name, ShortName: t.ShortName}
		indexByID[t.ID] = i
	}

	for _, r := range results {
		if i, ok := indexByID[r.HomeTeamID]; ok {
			rows[i].apply(r.HomeScore, r.AwayScore)
		}
		if i, ok := indexByID[r.AwayTeamID]; ok {
			rows[i].apply(r.AwayScore, r.HomeScore)
		}
	}

	return rank(rows, results)
}

type headToHead struct {
	points         int
	goalDifference int
	matches        int
}

func rank(rows []Standing, results []Result) []Standing {
	groups := make(map[int][]Standing)
	levels := make([]int, 0, len(rows))
	for _, row := range rows {
		if _, ok := groups[row.Points]; !ok {
			levels = append(levels, row.Points)
		}
		groups[row.Points] = append(groups[row.Points], row)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	out := make([]Standing, 0, len(rows))
	for _, points := range levels {
		group := groups[points]
		if len(group) > 1 {
			sortTiedGroup(group, results)
		}
		out = append(out, group...)
	}

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func sortTiedGroup(group []Standing, results []Result) {
	metrics := miniLeague(group, results)
	total := 0
	for _, m := range metrics {
		total += m.matches
	}
	useHeadToHead := total > 0

	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if useHeadToHead {
			ha, hb := metrics[a.TeamID], metrics[b.TeamID]
			if ha.points != hb.points {
				return ha.points > hb.points
			}
			if ha.goalDifference != hb.goalDifference {
				return ha.goalDifference > hb.goalDifference
			}
		}
		return a.TeamName < b.TeamName
	})
}

// miniLeague aggregates only results where both sides belong to group.
func miniLeague(group []Standing, results []Result) map[int64]*headToHead {
	metrics := make(map[int64]*headToHead, len(group))
	for _, row := range group {
		metrics[row.TeamID] = &headToHead{}
	}

	for _, r := range results {
		home, homeOK := metrics[r.HomeTeamID]
		away, awayOK := metrics[r.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}

		home.matches++
		away.matches++
		home.goalDifference += r.HomeScore - r.AwayScore
		away.goalDifference += r.AwayScore - r.HomeScore

		switch {
		case r.HomeScore > r.AwayScore:
			home.points += PointsForWin
		case r.AwayScore > r.HomeScore:
			away.points += PointsForWin
		default:
			home.points += PointsForDraw
			away.points += PointsForDraw
		}
	}

	return metrics
}
