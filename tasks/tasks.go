package tasks

import "encoding/json"

// ---
// QUEUE DEFINITIONS
// ---
const (
	// QueueTrendingRecompute rebuilds the ranked trending snapshot from
	// rating counts and watchlist membership.
	QueueTrendingRecompute = "q_trending_recompute"
)

// ---
// TASK PAYLOADS
// ---

// TrendingTaskPayload is the payload for QueueTrendingRecompute. Limit caps
// how many series make the snapshot; 0 means keep them all.
type TrendingTaskPayload struct {
	Limit int `json:"limit"`
}

// Marshal creates a JSON payload for a task.
func Marshal(payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
