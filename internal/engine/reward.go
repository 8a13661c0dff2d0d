package engine

import "math"

// Streak length thresholds and their point multipliers. Evaluated highest
// first, so a 31-day streak earns 2.00x, not 1.25x.
var multiplierTiers = []struct {
	minStreak  int
	multiplier float64
}{
	{30, 2.00},
	{14, 1.75},
	{7, 1.50},
	{3, 1.25},
}

// MultiplierForStreak maps a streak length to its point multiplier.
func MultiplierForStreak(streak int) float64 {
	for _, tier := range multiplierTiers {
		if streak >= tier.minStreak {
			return tier.multiplier
		}
	}
	return 1.0
}

type Reward struct {
	Points      int
	Multiplier  float64
	StreakBonus bool
}

// CalculateReward computes the points awarded for completing a task worth
// basePoints while on the given streak. The fractional remainder is
// truncated: 10 points at 1.25x awards 12.
func CalculateReward(basePoints, streak int) Reward {
	m := MultiplierForStreak(streak)
	return Reward{
		Points:      int(math.Floor(float64(basePoints) * m)),
		Multiplier:  m,
		StreakBonus: m > 1.0,
	}
}
