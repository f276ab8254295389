package models

// RatingSummary is the aggregate shown next to the stars.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// EngagementState is the per-viewer, per-series view state. It lives only for
// the lifetime of a series view; watchlist and follow membership are the only
// parts persisted (see the storage package).
type EngagementState struct {
	SeriesID      int64         `json:"series_id"`
	Unlocked      bool          `json:"unlocked"`
	InWatchlist   bool          `json:"in_watchlist"`
	UserRating    int           `json:"user_rating,omitempty"` // 0 = not rated this session
	DisplayRating RatingSummary `json:"display_rating"`
}
