package engine

// UserStats are the aggregates the badge criteria are checked against,
// captured after the completion has been applied.
type UserStats struct {
	CompletedTasks int
	TotalPoints    int
	CurrentStreak  int
}

type badgeCriterion struct {
	slug string
	met  func(UserStats) bool
}

// badgeCriteria is an ordered contract: criteria are scanned top to bottom
// and the first unearned one that passes wins. At most one badge is granted
// per completion, even when a single completion crosses several thresholds
// at once; the remaining ones are picked up by later completions.
var badgeCriteria = []badgeCriterion{
	{"first-flex", func(s UserStats) bool { return s.CompletedTasks >= 1 }},
	{"getting-started", func(s UserStats) bool { return s.CompletedTasks >= 5 }},
	{"task-master", func(s UserStats) bool { return s.CompletedTasks >= 25 }},
	{"century", func(s UserStats) bool { return s.TotalPoints >= 100 }},
	{"high-roller", func(s UserStats) bool { return s.TotalPoints >= 500 }},
	{"legend", func(s UserStats) bool { return s.TotalPoints >= 1000 }},
	{"on-fire", func(s UserStats) bool { return s.CurrentStreak >= 7 }},
	{"unstoppable", func(s UserStats) bool { return s.CurrentStreak >= 30 }},
}

// NextBadgeSlug returns the first unearned badge whose criterion the stats
// satisfy. A false result is the normal "nothing new" outcome, not an error.
func NextBadgeSlug(stats UserStats, earned map[string]bool) (string, bool) {
	for _, c := range badgeCriteria {
		if earned[c.slug] {
			continue
		}
		if c.met(stats) {
			return c.slug, true
		}
	}
	return "", false
}

// BadgeSlugs returns the slugs in evaluation order.
func BadgeSlugs() []string {
	out := make([]string, 0, len(badgeCriteria))
	for _, c := range badgeCriteria {
		out = append(out, c.slug)
	}
	return out
}
