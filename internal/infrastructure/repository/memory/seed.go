package memory

import "github.com/riskibarqy/league-simulator/internal/domain/team"

// SeedTeams returns the four clubs the league is played with.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Real Madrid", ShortName: "RMA", Power: 90, HomeAdvantage: 16, GoalkeeperFactor: 17, SupporterStrength: 18},
		{ID: 2, Name: "Liverpool", ShortName: "LIV", Power: 85, HomeAdvantage: 15, GoalkeeperFactor: 16, SupporterStrength: 17},
		{ID: 3, Name: "Bayern Munich", ShortName: "BAY", Power: 82, HomeAdvantage: 14, GoalkeeperFactor: 15, SupporterStrength: 15},
		{ID: 4, Name: "Galatasaray", ShortName: "GAL", Power: 72, HomeAdvantage: 18, GoalkeeperFactor: 12, SupporterStrength: 19},
	}
}
