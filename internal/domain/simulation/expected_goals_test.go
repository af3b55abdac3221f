package simulation

import (
	"math"
	"testing"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
)

var (
	realMadrid = team.Team{ID: 1, Name: "Real Madrid", ShortName: "RMA", Power: 90, HomeAdvantage: 16, GoalkeeperFactor: 17, SupporterStrength: 18}
	liverpool  = team.Team{ID: 2, Name: "Liverpool", ShortName: "LIV", Power: 85, HomeAdvantage: 15, GoalkeeperFactor: 16, SupporterStrength: 17}
)

func TestExpectedGoals_Formula(t *testing.T) {
	home := ExpectedGoals(realMadrid, true, liverpool)
	// 1.5*0.9*(0.5+0.5*0.2) + 0.8*0.3 + 0.9*0.15
	if want := 0.81 + 0.24 + 0.135; math.Abs(home-want) > 1e-9 {
		t.Fatalf("unexpected home xg: got=%v want=%v", home, want)
	}

	away := ExpectedGoals(liverpool, false, realMadrid)
	if want := 1.5 * 0.85 * (0.5 + 0.5*0.15); math.Abs(away-want) > 1e-9 {
		t.Fatalf("unexpected away xg: got=%v want=%v", away, want)
	}
}

func TestExpectedGoals_Clamped(t *testing.T) {
	weak := team.Team{Power: 0}
	if got := ExpectedGoals(weak, false, realMadrid); got != MinExpectedGoals {
		t.Fatalf("expected lower clamp, got %v", got)
	}

	overpowered := team.Team{Power: 500, HomeAdvantage: 20, SupporterStrength: 20}
	if got := ExpectedGoals(overpowered, true, team.Team{}); got != MaxExpectedGoals {
		t.Fatalf("expected upper clamp, got %v", got)
	}
}

func TestExpectedGoals_MonotonicInPower(t *testing.T) {
	for _, isHome := range []bool{true, false} {
		prev := -1.0
		for power := 0; power <= team.MaxPower; power++ {
			item := realMadrid
			item.Power = power
			got := ExpectedGoals(item, isHome, liverpool)
			if got < prev {
				t.Fatalf("xg decreased at power=%d home=%t: %v < %v", power, isHome, got, prev)
			}
			if got < MinExpectedGoals || got > MaxExpectedGoals {
				t.Fatalf("xg out of range at power=%d: %v", power, got)
			}
			prev = got
		}
	}
}
