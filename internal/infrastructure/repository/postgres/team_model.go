package postgres

import (
	"time"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

var teamColumns = []string{
	"id",
	"name",
	"short_name",
	"power",
	"home_advantage",
	"goalkeeper_factor",
	"supporter_strength",
	"created_at",
	"updated_at",
}

type teamTableModel struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	ShortName         string    `db:"short_name"`
	Power             int       `db:"power"`
	HomeAdvantage     int       `db:"home_advantage"`
	GoalkeeperFactor  int       `db:"goalkeeper_factor"`
	SupporterStrength int       `db:"supporter_strength"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:                m.ID,
		Name:              m.Name,
		ShortName:         m.ShortName,
		Power:             m.Power,
		HomeAdvantage:     m.HomeAdvantage,
		GoalkeeperFactor:  m.GoalkeeperFactor,
		SupporterStrength: m.SupporterStrength,
	}
}

type teamInsertModel struct {
	ID                int64  `db:"id"`
	Name              string `db:"name"`
	ShortName         string `db:"short_name"`
	Power             int    `db:"power"`
	HomeAdvantage     int    `db:"home_advantage"`
	GoalkeeperFactor  int    `db:"goalkeeper_factor"`
	SupporterStrength int    `db:"supporter_strength"`
}

func newTeamInsertModel(t team.Team) teamInsertModel {
	return teamInsertModel{
		ID:                t.ID,
		Name:              t.Name,
		ShortName:         t.ShortName,
		Power:             t.Power,
		HomeAdvantage:     t.HomeAdvantage,
		GoalkeeperFactor:  t.GoalkeeperFactor,
		SupporterStrength: t.SupporterStrength,
	}
}
