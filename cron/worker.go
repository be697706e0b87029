package cron

import (
	"context"
	"log"
	"time"

	"styledecor/config"
	"styledecor/services/booking"

	"github.com/hibiken/asynq"
)

const TypeDecoratorRelease = "decorator:release"

// InitReleaseWorker starts the background worker and scheduler for the
// stale-booking release sweep. The maintenance queue runs with concurrency
// 1, so overlapping sweeps are serialized; the sweep itself skips bookings
// that are already completed, making re-runs no-ops.
func InitReleaseWorker(bookingSvc booking.BookingService) (*asynq.Server, *asynq.Scheduler) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"maintenance": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDecoratorRelease, handleReleaseTask(bookingSvc))

	go func() {
		log.Println("[ReleaseWorker] starting maintenance worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReleaseWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReleaseWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	task := asynq.NewTask(TypeDecoratorRelease, nil)
	if _, err := scheduler.Register(config.AppConfig.ReleaseSweepSchedule, task, asynq.Queue("maintenance")); err != nil {
		log.Fatalf("[ReleaseWorker] failed to register sweep schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReleaseWorker] scheduler stopped: %v", err)
		}
	}()

	return srv, scheduler
}

func handleReleaseTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		released, err := bookingSvc.ReleaseStale(ctx)
		if err != nil {
			log.Printf("[ReleaseWorker] sweep failed: %v", err)
			return err
		}
		if released > 0 {
			log.Printf("[ReleaseWorker] released %d stale bookings", released)
		}
		return nil
	}
}
