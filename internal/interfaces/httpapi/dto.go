package httpapi

import (
	"github.com/riskibarqy/league-simulator/internal/domain/fixture"
	"github.com/riskibarqy/league-simulator/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-simulator/internal/domain/prediction"
	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/usecase"
)

type updateMatchResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,min=0,max=20"`
	AwayScore *int `json:"away_score" validate:"required,min=0,max=20"`
}

type teamDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	ShortName         string `json:"short_name"`
	Power             int    `json:"power"`
	HomeAdvantage     int    `json:"home_advantage"`
	GoalkeeperFactor  int    `json:"goalkeeper_factor"`
	SupporterStrength int    `json:"supporter_strength"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	FixtureID    int64  `json:"fixture_id"`
	HomeTeamID   int64  `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name,omitempty"`
	AwayTeamID   int64  `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name,omitempty"`
	HomeScore    *int   `json:"home_score"`
	AwayScore    *int   `json:"away_score"`
	Result       string `json:"result"`
	IsPlayed     bool   `json:"is_played"`
}

type fixtureDTO struct {
	ID       int64      `json:"id"`
	Week     int        `json:"week"`
	IsPlayed bool       `json:"is_played"`
	Matches  []matchDTO `json:"matches"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	ShortName      string `json:"short_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type predictionDTO struct {
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	ShortName   string  `json:"short_name"`
	Probability float64 `json:"probability"`
}

type predictionsDTO struct {
	Available   bool            `json:"available"`
	Predictions []predictionDTO `json:"predictions"`
}

type playWeekDTO struct {
	Played  bool        `json:"played"`
	Fixture *fixtureDTO `json:"fixture,omitempty"`
}

type simulationDTO struct {
	Teams          []teamDTO       `json:"teams"`
	Fixtures       []fixtureDTO    `json:"fixtures"`
	Standings      []standingDTO   `json:"standings"`
	CurrentWeek    int             `json:"current_week"`
	Predictions    []predictionDTO `json:"predictions"`
	AllWeeksPlayed bool            `json:"all_weeks_played"`
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamDTO{
			ID:                item.ID,
			Name:              item.Name,
			ShortName:         item.ShortName,
			Power:             item.Power,
			HomeAdvantage:     item.HomeAdvantage,
			GoalkeeperFactor:  item.GoalkeeperFactor,
			SupporterStrength: item.SupporterStrength,
		})
	}
	return out
}

func matchToDTO(item fixture.Match, lookup team.Lookup) matchDTO {
	return matchDTO{
		ID:           item.ID,
		FixtureID:    item.FixtureID,
		HomeTeamID:   item.HomeTeamID,
		HomeTeamName: lookup[item.HomeTeamID].Name,
		AwayTeamID:   item.AwayTeamID,
		AwayTeamName: lookup[item.AwayTeamID].Name,
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		Result:       item.Result(),
		IsPlayed:     item.IsPlayed,
	}
}

func fixtureToDTO(item fixture.Fixture, lookup team.Lookup) fixtureDTO {
	matches := make([]matchDTO, 0, len(item.Matches))
	for _, m := range item.Matches {
		matches = append(matches, matchToDTO(m, lookup))
	}
	return fixtureDTO{
		ID:       item.ID,
		Week:     item.Week,
		IsPlayed: item.IsPlayed,
		Matches:  matches,
	}
}

func fixturesToDTO(items []fixture.Fixture, lookup team.Lookup) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item, lookup))
	}
	return out
}

func standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingDTO{
			Position:       item.Position,
			TeamID:         item.TeamID,
			TeamName:       item.TeamName,
			ShortName:      item.ShortName,
			Played:         item.Played,
			Won:            item.Won,
			Drawn:          item.Drawn,
			Lost:           item.Lost,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
			Points:         item.Points,
		})
	}
	return out
}

func predictionsToDTO(items []prediction.TeamPrediction) []predictionDTO {
	out := make([]predictionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, predictionDTO{
			TeamID:      item.TeamID,
			TeamName:    item.TeamName,
			ShortName:   item.ShortName,
			Probability: item.Probability,
		})
	}
	return out
}

func dashboardToDTO(item usecase.Dashboard) simulationDTO {
	lookup := team.NewLookup(item.Teams)
	return simulationDTO{
		Teams:          teamsToDTO(item.Teams),
		Fixtures:       fixturesToDTO(item.Fixtures, lookup),
		Standings:      standingsToDTO(item.Standings),
		CurrentWeek:    item.CurrentWeek,
		Predictions:    predictionsToDTO(item.Predictions),
		AllWeeksPlayed: item.AllWeeksPlayed,
	}
}
