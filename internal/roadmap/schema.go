package roadmap

import "google.golang.org/genai"

// StrategySchema is the response schema both providers send upstream: an
// array of exactly three strategy objects.
func StrategySchema() *genai.Schema {
	count := int64(StrategyCount)
	return &genai.Schema{
		Type:     genai.TypeArray,
		MinItems: &count,
		MaxItems: &count,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {Type: genai.TypeString},
				"points": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"timeline": {Type: genai.TypeString},
				"priority": {
					Type: genai.TypeString,
					Enum: []string{"High", "Medium", "Low"},
				},
			},
			Required:         []string{"title", "points", "timeline", "priority"},
			PropertyOrdering: []string{"title", "points", "timeline", "priority"},
		},
	}
}
