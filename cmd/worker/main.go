package main

import (
	"context"
	"log"

	"github.com/BALAJIISWAROOP/Snap-Shots/internal/platform"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/BALAJIISWAROOP/Snap-Shots/tasks"
	"github.com/BALAJIISWAROOP/Snap-Shots/worker"
)

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	processor := worker.NewProcessor(db, rdb, storage.NewRedisStore(rdb))
	processor.Register(tasks.QueueTrendingRecompute, processor.HandleTrendingRecompute)

	log.Println("Worker started, waiting for queue tasks...")
	processor.Listen(ctx, tasks.QueueTrendingRecompute)
}
