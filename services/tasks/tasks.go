package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

const (
	// TypeBookingLinkGenerate is the delayed booking-link generation task.
	TypeBookingLinkGenerate = "bookinglink:generate"
	// TypeWelcomeSend delivers the post-onboarding welcome notification.
	TypeWelcomeSend = "welcome:send"
)

// NewBookingLinkTask schedules link generation after the given delay.
func NewBookingLinkTask(payload models.BookingLinkTaskPayload, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingLinkGenerate, b)
	opts := []asynq.Option{asynq.ProcessIn(delay)}
	return task, opts, nil
}

// NewWelcomeTask enqueues a welcome notification for immediate delivery.
func NewWelcomeTask(payload models.NotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeWelcomeSend, b), nil, nil
}
