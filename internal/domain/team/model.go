package team

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	MaxPower     = 100
	MaxAttribute = 20
)

var ErrInvalidTeam = errors.New("invalid team")

// Team is one club taking part in the mini-league.
type Team struct {
	ID                int64
	Name              string
	ShortName         string
	Power             int
	HomeAdvantage     int
	GoalkeeperFactor  int
	SupporterStrength int
}

func (t Team) OverallStrength() int {
	return t.Power + t.GoalkeeperFactor + t.SupporterStrength
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.Wrap(ErrInvalidTeam, "team name is required")
	}
	short := strings.TrimSpace(t.ShortName)
	if short == "" || len(short) > 3 {
		return errors.Wrapf(ErrInvalidTeam, "team %q short name must be 1-3 characters", t.Name)
	}
	if t.Power < 0 || t.Power > MaxPower {
		return errors.Wrapf(ErrInvalidTeam, "team %q power must be within 0..%d", t.Name, MaxPower)
	}
	for label, value := range map[string]int{
		"home advantage":     t.HomeAdvantage,
		"goalkeeper factor":  t.GoalkeeperFactor,
		"supporter strength": t.SupporterStrength,
	} {
		if value < 0 || value > MaxAttribute {
			return errors.Wrapf(ErrInvalidTeam, "team %q %s must be within 0..%d", t.Name, label, MaxAttribute)
		}
	}

	return nil
}

// Lookup indexes teams by id.
type Lookup map[int64]Team

func NewLookup(teams []Team) Lookup {
	out := make(Lookup, len(teams))
	for _, item := range teams {
		out[item.ID] = item
	}
	return out
}
