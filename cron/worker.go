package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"campusspots/config"
	"campusspots/services/checkin"
	"campusspots/services/tasks"
)

// InitOccupancyWorker runs the async worker in background.
func InitOccupancyWorker(checkInSvc checkin.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOccupancyRecompute, handleOccupancyTask(checkInSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[OccupancyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OccupancyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OccupancyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleOccupancyTask(checkInSvc checkin.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.OccupancyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[OccupancyWorker] invalid payload: %v", err)
			return err
		}
		if p.SpotID == "" {
			log.Printf("[OccupancyWorker] payload missing spotId, dropping task")
			return nil
		}

		snapshot, err := checkInSvc.RecomputeOccupancy(ctx, p.SpotID)
		if err != nil {
			log.Printf("[OccupancyWorker] recompute failed for spot %s: %v", p.SpotID, err)
			return err
		}
		log.Printf("[OccupancyWorker] spot %s occupancy %d%% from %d check-ins",
			p.SpotID, snapshot.Occupancy, snapshot.SampleSize)
		return nil
	}
}
