// Package types contains common types used across the application
package types

// Match represents one entry in a top-N match result
type Match struct {
	Rank     int     `json:"rank"`
	EntityID string  `json:"entity_id"`
	Score    float64 `json:"score"`
}
