package engine

import "math/rand"

// flexMessages is the fixed pool of celebration lines shown when a task is
// completed. One is picked pseudorandomly per Flex record.
var flexMessages = []string{
	"Absolutely crushed it! 💪",
	"Another one bites the dust!",
	"That task never stood a chance.",
	"Certified productivity machine!",
	"Boom. Done. Next!",
	"Flexing on the to-do list!",
	"Unreasonably productive today.",
	"Task: destroyed. Vibes: immaculate.",
}

// pickMessage uses the package-level locked source so concurrent completions
// (the HTTP handlers run them in parallel) do not race on generator state.
func pickMessage() string {
	return flexMessages[rand.Intn(len(flexMessages))]
}
