package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"homeview/config"
	"homeview/models"
	"homeview/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeViewingReminder = "viewing:reminder"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler queues a reminder task ahead of each confirmed viewing.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder to fire a configured number of hours
// before the viewing. Viewings starting inside the lead window are reminded
// immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(viewing *models.Viewing) error {
	payload, err := json.Marshal(notification.ViewingReminder{
		ViewingID:     viewing.ID,
		PropertyTitle: viewing.PropertyTitle,
		Name:          viewing.Name,
		Email:         viewing.Email,
		Date:          viewing.Date,
		Time:          viewing.Time,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", viewing.Date+" "+viewing.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse viewing start: %w", err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	fireAt := startsAt.Add(-lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeViewingReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeViewingReminder, handleReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var reminder notification.ViewingReminder
		if err := json.Unmarshal(task.Payload(), &reminder); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] triggering reminder for viewing %s (%s %s)",
			reminder.ViewingID, reminder.Date, reminder.Time)

		if err := notifSvc.SendViewingReminder(ctx, reminder); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
