package worker

import (
	"context"
	"encoding/json"
	"log"

	"github.com/BALAJIISWAROOP/Snap-Shots/catalog"
	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/BALAJIISWAROOP/Snap-Shots/tasks"
)

// HandleTrendingRecompute processes tasks from QueueTrendingRecompute. It
// rescores the whole catalog and replaces the trending snapshot the API
// serves from.
func (p *Processor) HandleTrendingRecompute(ctx context.Context, payload string) error {
	var task tasks.TrendingTaskPayload
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		return err
	}

	var series []models.Series
	if err := p.DB.Find(&series).Error; err != nil {
		return err
	}

	watchlist := p.Sets.ReadSet(ctx, storage.KeyWatchlist)
	ranked := RankSeries(series, watchlist, task.Limit)

	if err := p.Sets.WriteSet(ctx, catalog.KeyTrendingSeries, ranked); err != nil {
		return err
	}

	log.Printf("Trending snapshot updated: %d of %d series ranked", len(ranked), len(series))
	return nil
}
