package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ouiimi/config"
	"ouiimi/models"
	booking "ouiimi/services/booking"
	"ouiimi/services/tasks"

	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker in background. It consumes the
// deferred booking tasks: reminder emails and the confirmed->completed flip.
func InitBookingWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(bookingSvc))
	mux.HandleFunc(tasks.TypeBookingComplete, handleCompleteTask(bookingSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}
		return bookingSvc.SendReminder(p.BookingID)
	}
}

func handleCompleteTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CompletePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CompleteHandler] invalid payload: %v", err)
			return err
		}
		return bookingSvc.CompleteBooking(p.BookingID)
	}
}
