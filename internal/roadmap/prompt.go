package roadmap

import (
	"fmt"
	"strings"
)

// StrategyCount is the number of pillars every roadmap must contain.
const StrategyCount = 3

// MaxNicheLength bounds the free-text niche, in runes.
const MaxNicheLength = 120

const promptTemplate = `Generate an elite level digital growth strategy for a business in the niche: "%s". ` +
	`Provide professional, deeply technical insights. Output exactly %d key strategic pillars as JSON.`

// BuildPrompt renders the roadmap prompt for niche.
func BuildPrompt(niche string) string {
	return fmt.Sprintf(promptTemplate, escapeForPrompt(niche), StrategyCount)
}

// escapeForPrompt keeps the niche on one line and inside its quotes
func escapeForPrompt(s string) string {
	s = strings.ReplaceAll(s, `"`, `'`)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
