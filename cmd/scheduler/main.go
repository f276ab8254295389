package main

import (
	"context"
	"log"

	"github.com/BALAJIISWAROOP/Snap-Shots/internal/platform"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/BALAJIISWAROOP/Snap-Shots/tasks"
	"github.com/BALAJIISWAROOP/Snap-Shots/worker"
	"github.com/robfig/cron/v3"
)

// trendingLimit caps how many series make the daily trending snapshot.
const trendingLimit = 20

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	processor := worker.NewProcessor(db, rdb, storage.NewRedisStore(rdb))

	enqueue := func() {
		task := tasks.TrendingTaskPayload{Limit: trendingLimit}
		if err := processor.Enqueue(ctx, tasks.QueueTrendingRecompute, task); err != nil {
			log.Printf("Error queuing trending recompute: %v", err)
			return
		}
		log.Println("Queued trending recompute")
	}

	// Recompute once at startup so a fresh deployment serves a snapshot,
	// then daily.
	enqueue()

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", enqueue); err != nil {
		log.Fatalf("Error scheduling trending recompute: %v", err)
	}
	c.Start()
	defer c.Stop()

	log.Println("Scheduler started, waiting for cron ticks...")
	// Keep the main thread alive
	select {}
}
