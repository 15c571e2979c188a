package roadmap

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bilgisen/nexus/internal/models"
)

var controlChars = regexp.MustCompile(`[\x00-\x1F\x7F]`)

type rawStrategy struct {
	Title    string   `json:"title"`
	Points   []string `json:"points"`
	Timeline string   `json:"timeline"`
	Priority string   `json:"priority"`
}

// ParseStrategies decodes and checks a provider response. Anything that is
// not an array of exactly three well-formed strategies is ErrUpstreamFormat.
func ParseStrategies(response string) ([]models.RoadmapStrategy, error) {
	clean := stripCodeFence(response)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrUpstreamFormat)
	}

	var raw []rawStrategy
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if len(raw) != StrategyCount {
		return nil, fmt.Errorf("%w: expected %d strategies, got %d", ErrUpstreamFormat, StrategyCount, len(raw))
	}

	out := make([]models.RoadmapStrategy, 0, len(raw))
	for i, r := range raw {
		s, err := normalizeStrategy(r)
		if err != nil {
			return nil, fmt.Errorf("%w: strategy %d: %v", ErrUpstreamFormat, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func normalizeStrategy(r rawStrategy) (models.RoadmapStrategy, error) {
	title := cleanText(r.Title)
	if title == "" {
		return models.RoadmapStrategy{}, fmt.Errorf("missing title")
	}

	points := make([]string, 0, len(r.Points))
	for _, p := range r.Points {
		if p = cleanText(p); p != "" {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return models.RoadmapStrategy{}, fmt.Errorf("no points")
	}

	priority, ok := normalizePriority(r.Priority)
	if !ok {
		return models.RoadmapStrategy{}, fmt.Errorf("invalid priority %q", r.Priority)
	}

	return models.RoadmapStrategy{
		Title:    title,
		Points:   points,
		Timeline: cleanText(r.Timeline),
		Priority: priority,
	}, nil
}

func normalizePriority(p string) (string, bool) {
	switch strings.ToLower(cleanText(p)) {
	case "high":
		return models.PriorityHigh, true
	case "medium":
		return models.PriorityMedium, true
	case "low":
		return models.PriorityLow, true
	}
	return "", false
}

// cleanText removes control characters and normalizes whitespace
func cleanText(s string) string {
	s = controlChars.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripCodeFence removes a surrounding ``` or ```json fence, which models
// sometimes add even in JSON mode. The payload may start on the fence line.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
	})
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
