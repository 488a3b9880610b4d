package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/etraffic/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	EventIncidentCreated  = "incident.created"
	EventIncidentVerified = "incident.verified"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Event     string                 `json:"event"`
	Incident  *models.PublicIncident `json:"incident"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewIncidentEvent собирает событие с текущим временем; автор и GPS устройства наружу не уходят
func NewIncidentEvent(event string, incident *models.Incident) WebhookEvent {
	public := incident.Public()
	return WebhookEvent{
		Event:     event,
		Incident:  &public,
		Timestamp: time.Now().UTC(),
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладёт событие в очередь Redis; доставку выполняет WebhookWorker
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
