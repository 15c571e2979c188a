package models

// Strategy priorities
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// RoadmapStrategy is one pillar of a generated growth roadmap
type RoadmapStrategy struct {
	Title    string   `json:"title"`
	Points   []string `json:"points"`
	Timeline string   `json:"timeline"`
	Priority string   `json:"priority"`
}
