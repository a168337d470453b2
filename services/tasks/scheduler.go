package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"ouiimi/config"
	"ouiimi/models"

	"github.com/hibiken/asynq"
)

// Task type names shared between the enqueuing side and the worker.
const (
	TypeReminderSend    = "reminder:send"
	TypeBookingComplete = "booking:complete"
)

// Scheduler enqueues deferred booking work.
type Scheduler interface {
	ScheduleReminder(bookingID string, at time.Time) error
	ScheduleCompletion(bookingID string, at time.Time) error
}

// AsynqScheduler implements Scheduler over a Redis-backed asynq client.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler builds the production scheduler.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

// ScheduleReminder queues a reminder email for the given time. Times already
// in the past are delivered immediately.
func (s *AsynqScheduler) ScheduleReminder(bookingID string, at time.Time) error {
	payload, err := json.Marshal(models.ReminderPayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// ScheduleCompletion queues the confirmed->completed transition for when the
// booked slot has elapsed.
func (s *AsynqScheduler) ScheduleCompletion(bookingID string, at time.Time) error {
	payload, err := json.Marshal(models.CompletePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal completion payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingComplete, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue completion: %w", err)
	}
	return nil
}
