package worker

import (
	"sort"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

// watchlistBoost is the score bump for series viewers have saved for later.
const watchlistBoost = 50

// RankSeries orders series ids by engagement score: the seed rating count
// plus a boost for watchlist membership. Ties keep catalog order. A positive
// limit truncates the ranking.
func RankSeries(series []models.Series, watchlist []int64, limit int) []int64 {
	saved := make(map[int64]bool, len(watchlist))
	for _, id := range watchlist {
		saved[id] = true
	}

	scored := make([]models.Series, len(series))
	copy(scored, series)
	score := func(s models.Series) int {
		n := s.RatingCount
		if saved[s.ID] {
			n += watchlistBoost
		}
		return n
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return score(scored[i]) > score(scored[j])
	})

	if limit > 0 && limit < len(scored) {
		scored = scored[:limit]
	}
	ids := make([]int64, len(scored))
	for i, s := range scored {
		ids[i] = s.ID
	}
	return ids
}
