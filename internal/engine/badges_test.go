package engine

import "testing"

func TestNextBadgeSlugOrder(t *testing.T) {
	// Crossing 100 and 500 points at once grants century only.
	stats := UserStats{CompletedTasks: 30, TotalPoints: 600, CurrentStreak: 0}
	earned := map[string]bool{
		"first-flex":      true,
		"getting-started": true,
		"task-master":     true,
	}

	slug, ok := NextBadgeSlug(stats, earned)
	if !ok || slug != "century" {
		t.Fatalf("got %q/%v, want century", slug, ok)
	}
}

func TestNextBadgeSlugSkipsEarned(t *testing.T) {
	stats := UserStats{CompletedTasks: 3, TotalPoints: 30, CurrentStreak: 8}
	earned := map[string]bool{"first-flex": true}

	slug, ok := NextBadgeSlug(stats, earned)
	if !ok || slug != "on-fire" {
		t.Fatalf("got %q/%v, want on-fire", slug, ok)
	}
}

func TestNextBadgeSlugNone(t *testing.T) {
	stats := UserStats{CompletedTasks: 2, TotalPoints: 20, CurrentStreak: 2}
	earned := map[string]bool{"first-flex": true}

	if slug, ok := NextBadgeSlug(stats, earned); ok {
		t.Fatalf("got %q, want no badge", slug)
	}
}

func TestNextBadgeSlugAllEarned(t *testing.T) {
	stats := UserStats{CompletedTasks: 1000, TotalPoints: 100000, CurrentStreak: 400}
	earned := map[string]bool{}
	for _, slug := range BadgeSlugs() {
		earned[slug] = true
	}

	if slug, ok := NextBadgeSlug(stats, earned); ok {
		t.Fatalf("got %q, want none when everything is earned", slug)
	}
}

func TestBadgeSlugsOrderIsStable(t *testing.T) {
	want := []string{
		"first-flex", "getting-started", "task-master",
		"century", "high-roller", "legend",
		"on-fire", "unstoppable",
	}
	got := BadgeSlugs()
	if len(got) != len(want) {
		t.Fatalf("got %d slugs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slug[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}
