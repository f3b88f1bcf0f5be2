package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"glamora/config"
	"glamora/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLeadTime is how long before the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Stylist      string `json:"stylist,omitempty"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(logger *zap.Logger) {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(logger))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		// The salon sends reminders over SMS/email out-of-band; the worker's
		// job is to surface the due reminder with everything the front desk
		// needs.
		logger.Info("appointment reminder due",
			zap.String("bookingID", p.BookingID),
			zap.String("customer", p.CustomerName),
			zap.String("phone", p.Phone),
			zap.String("date", p.Date),
			zap.String("time", p.Time),
			zap.String("stylist", p.Stylist))
		return nil
	}
}

// ReminderScheduler enqueues reminder tasks for new bookings.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler connects an asynq client to the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleAppointmentReminder enqueues a reminder to fire ahead of the
// appointment. Appointments closer than the lead time get the reminder
// immediately.
func (s *ReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, booking *models.Booking) error {
	payload := ReminderPayload{
		BookingID:    booking.ID,
		CustomerName: booking.Customer.Name,
		Phone:        booking.Customer.Phone,
		Email:        booking.Customer.Email,
		Date:         booking.Appointment.Date,
		Time:         booking.Appointment.Time,
	}
	if booking.Stylist != nil {
		payload.Stylist = booking.Stylist.Name
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, data)
	fireAt := booking.Appointment.DateTime.Add(-reminderLeadTime)
	var opts []asynq.Option
	if fireAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
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
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
