package service

import (
	"strings"

	"github.com/smallbiznis/tycoon/internal/employee/domain"
	"github.com/smallbiznis/tycoon/internal/rng"
)

type positionMultiplier struct {
	keyword      string
	productivity float64
	morale       float64
	experience   int
}

// Keyword order matters: the first keyword contained in the lowercased
// position wins, so "senior developer" resolves to "developer".
var positionMultipliers = []positionMultiplier{
	{"manager", 1.1, 1.0, 3},
	{"developer", 1.2, 0.9, 2},
	{"designer", 1.0, 1.1, 2},
	{"salesperson", 0.9, 1.2, 1},
	{"intern", 0.7, 1.3, 1},
	{"senior", 1.3, 0.8, 5},
	{"executive", 1.2, 1.1, 7},
}

type traits struct {
	productivity float64
	morale       float64
	experience   int
}

// generateTraits rolls starting traits for a new hire: two uniform draws
// in [0.8, 1.2) adjusted by the position multiplier, scores clamped to
// [0.5, 2.0] and experience to [1, 10].
func generateTraits(position string, random rng.Source) traits {
	baseProductivity := 0.8 + random.Float64()*0.4
	baseMorale := 0.8 + random.Float64()*0.4

	multiplier := positionMultiplier{productivity: 1.0, morale: 1.0, experience: 1}
	positionLower := strings.ToLower(position)
	for _, m := range positionMultipliers {
		if strings.Contains(positionLower, m.keyword) {
			multiplier = m
			break
		}
	}

	return traits{
		productivity: clampScore(baseProductivity * multiplier.productivity),
		morale:       clampScore(baseMorale * multiplier.morale),
		experience:   clampExperience(multiplier.experience + random.Intn(2)),
	}
}

func clampScore(v float64) float64 {
	if v < domain.MinScore {
		return domain.MinScore
	}
	if v > domain.MaxScore {
		return domain.MaxScore
	}
	return v
}

func clampExperience(v int) int {
	if v < domain.MinExperience {
		return domain.MinExperience
	}
	if v > domain.MaxExperience {
		return domain.MaxExperience
	}
	return v
}
