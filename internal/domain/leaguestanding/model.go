package leaguestanding

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// Standing represents a league table row for one team.
type Standing struct {
	TeamID         int64
	TeamName       string
	ShortName      string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Result is a bare final score, either stored or simulated.
type Result struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
}

func (s *Standing) apply(goalsFor, goalsAgainst int) {
	s.Played++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		s.Won++
		s.Points += PointsForWin
	case goalsFor == goalsAgainst:
		s.Drawn++
		s.Points += PointsForDraw
	default:
		s.Lost++
	}
}
