package service

import (
	"context"
	"encoding/json"
	"time"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/util"
	"cogscreen_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultEventChannel is the Redis channel screening lifecycle events are
// published to. Delivery to email/SMS or dashboards is a downstream
// concern; this side only emits.
const DefaultEventChannel = "cogscreen.assessment.events"

const (
	EventSubmitted      = "assessment.submitted"
	EventReviewRequired = "assessment.review_required"
	EventCompleted      = "assessment.completed"
)

// Event is the JSON payload published for each lifecycle change. Message
// is pre-localized to the assessment's language so downstream senders do
// not need the message catalog.
type Event struct {
	Name         string         `json:"name"`
	AssessmentID uint           `json:"assessmentId"`
	Number       string         `json:"number"`
	PatientID    string         `json:"patientId"`
	Status       model.Status   `json:"status"`
	Language     model.Language `json:"language"`
	Message      string         `json:"message"`
	OccurredAt   time.Time      `json:"occurredAt"`
}

// Notifier emits lifecycle events. Publishing is best-effort: a broker
// outage must never fail a submission or review.
type Notifier interface {
	AssessmentSubmitted(ctx context.Context, a *model.Assessment)
	ReviewRequired(ctx context.Context, a *model.Assessment)
	ReviewCompleted(ctx context.Context, a *model.Assessment)
}

type RedisNotifier struct {
	Client  *redis.Client
	Channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultEventChannel
	}
	return &RedisNotifier{Client: client, Channel: channel}
}

func (n *RedisNotifier) publish(ctx context.Context, name, messageKey string, a *model.Assessment) {
	ev := Event{
		Name:         name,
		AssessmentID: a.ID,
		Number:       a.NumberString(),
		PatientID:    a.PatientID,
		Status:       a.Status,
		Language:     a.Language,
		Message:      util.T(a.Language, messageKey),
		OccurredAt:   time.Now(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Error("marshal assessment event", zap.Error(err))
		return
	}
	if err := n.Client.Publish(ctx, n.Channel, payload).Err(); err != nil {
		logger.Log.Warn("publish assessment event",
			zap.String("event", name),
			zap.String("number", a.NumberString()),
			zap.Error(err))
	}
}

func (n *RedisNotifier) AssessmentSubmitted(ctx context.Context, a *model.Assessment) {
	n.publish(ctx, EventSubmitted, "event.submitted", a)
}

func (n *RedisNotifier) ReviewRequired(ctx context.Context, a *model.Assessment) {
	n.publish(ctx, EventReviewRequired, "event.review_required", a)
}

func (n *RedisNotifier) ReviewCompleted(ctx context.Context, a *model.Assessment) {
	n.publish(ctx, EventCompleted, "event.completed", a)
}
