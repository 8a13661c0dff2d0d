package engine

import "testing"

func TestMultiplierTiers(t *testing.T) {
	cases := []struct {
		streak int
		want   float64
	}{
		{0, 1.00},
		{1, 1.00},
		{2, 1.00},
		{3, 1.25},
		{6, 1.25},
		{7, 1.50},
		{13, 1.50},
		{14, 1.75},
		{29, 1.75},
		{30, 2.00},
		{31, 2.00},
		{365, 2.00},
	}
	for _, tc := range cases {
		if got := MultiplierForStreak(tc.streak); got != tc.want {
			t.Fatalf("MultiplierForStreak(%d)=%v, want %v", tc.streak, got, tc.want)
		}
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	prev := 0.0
	for _, streak := range []int{0, 3, 7, 14, 30, 31} {
		m := MultiplierForStreak(streak)
		if m < prev {
			t.Fatalf("multiplier decreased at streak %d: %v < %v", streak, m, prev)
		}
		prev = m
	}
}

func TestRewardTruncatesFraction(t *testing.T) {
	r := CalculateReward(10, 3) // 10 * 1.25 = 12.5
	if r.Points != 12 {
		t.Fatalf("points=%d, want truncated 12", r.Points)
	}
	if !r.StreakBonus {
		t.Fatalf("expected streak bonus flag at 1.25x")
	}
}

func TestRewardBaseTier(t *testing.T) {
	r := CalculateReward(10, 2)
	if r.Points != 10 || r.StreakBonus || r.Multiplier != 1.0 {
		t.Fatalf("reward=%+v, want plain 10 points", r)
	}
}

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := LevelForPoints(tc.points); got != tc.want {
			t.Fatalf("LevelForPoints(%d)=%d, want %d", tc.points, got, tc.want)
		}
	}
	if PointsForLevel(2) != 100 {
		t.Fatalf("PointsForLevel(2)=%d, want 100", PointsForLevel(2))
	}
	if PointsForLevel(1) != 0 {
		t.Fatalf("PointsForLevel(1)=%d, want 0", PointsForLevel(1))
	}
}
