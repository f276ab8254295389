package worker

import (
	"testing"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

func TestRankSeriesOrdersByScore(t *testing.T) {
	series := []models.Series{
		{ID: 1, RatingCount: 10},
		{ID: 2, RatingCount: 200},
		{ID: 3, RatingCount: 40},
	}

	got := RankSeries(series, nil, 0)
	if len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Fatalf("expected [2 3 1], got %v", got)
	}
}

func TestRankSeriesBoostsWatchlisted(t *testing.T) {
	series := []models.Series{
		{ID: 1, RatingCount: 60},
		{ID: 2, RatingCount: 20}, // 20 + 50 boost = 70
	}

	got := RankSeries(series, []int64{2}, 0)
	if got[0] != 2 {
		t.Fatalf("watchlisted series should outrank, got %v", got)
	}
}

func TestRankSeriesTiesKeepCatalogOrder(t *testing.T) {
	series := []models.Series{
		{ID: 5, RatingCount: 30},
		{ID: 6, RatingCount: 30},
	}

	got := RankSeries(series, nil, 0)
	if got[0] != 5 || got[1] != 6 {
		t.Fatalf("ties should keep catalog order, got %v", got)
	}
}

func TestRankSeriesLimit(t *testing.T) {
	series := []models.Series{
		{ID: 1, RatingCount: 1},
		{ID: 2, RatingCount: 2},
		{ID: 3, RatingCount: 3},
	}

	got := RankSeries(series, nil, 2)
	if len(got) != 2 || got[0] != 3 || got[1] != 2 {
		t.Fatalf("expected [3 2], got %v", got)
	}
}
