package simulation

import "github.com/riskibarqy/league-simulator/internal/domain/team"

const (
	MinExpectedGoals = 0.3
	MaxExpectedGoals = 3.5

	baseGoalRate    = 1.5
	homeBoostWeight = 0.3
	supporterWeight = 0.15
	attributeScale  = float64(team.MaxAttribute)
	powerScale      = float64(team.MaxPower)
)

// ExpectedGoals estimates how many goals t scores against opponent. The
// opponent goalkeeper scales the attack down, home sides get a small additive
// lift from home advantage and crowd, and the result is bounded to
// [MinExpectedGoals, MaxExpectedGoals].
func ExpectedGoals(t team.Team, isHome bool, opponent team.Team) float64 {
	attack := float64(t.Power) / powerScale
	defenseWeakness := 1 - float64(opponent.GoalkeeperFactor)/attributeScale

	xg := baseGoalRate * attack * (0.5 + 0.5*defenseWeakness)
	if isHome {
		xg += (float64(t.HomeAdvantage) / attributeScale) * homeBoostWeight
		xg += (float64(t.SupporterStrength) / attributeScale) * supporterWeight
	}

	return min(MaxExpectedGoals, max(MinExpectedGoals, xg))
}
