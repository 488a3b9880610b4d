package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/etraffic/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen - получатель вебхуков признан недоступным, доставка не выполнялась
var ErrCircuitOpen = errors.New("webhook: circuit breaker is open")

// deliveryError - ответ получателя вне диапазона 2xx
type deliveryError struct {
	StatusCode int
}

func (e *deliveryError) Error() string {
	return fmt.Sprintf("webhook: unexpected status code %d", e.StatusCode)
}

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker[int]
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	w := &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
	w.breaker = gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        "webhook",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Webhook circuit breaker changed state")
		},
	})
	return w
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping webhook worker.")
				return
			default:
				// 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, webhookQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event WebhookEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
					continue
				}

				w.processWebhookEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithField("event", event.Event)
	if event.Incident != nil {
		log = log.WithField("incident_id", event.Incident.ID)
	}

	if w.cfg.WebhookURL == "" {
		log.Debug("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	if err := w.deliver(ctx, rawPayload); err != nil {
		log.WithError(err).Errorf("Failed to deliver webhook after %d retries", w.cfg.WebhookMaxRetries)
		return
	}
	log.Info("Webhook delivered successfully.")
}

// deliver отправляет payload с экспоненциальной задержкой между попытками.
// 4xx не повторяется; открытый breaker прекращает попытки сразу.
func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = w.cfg.WebhookBaseDelay
	bo.MaxElapsedTime = 0

	retries := w.cfg.WebhookMaxRetries - 1
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries)), ctx)

	operation := func() error {
		_, err := w.breaker.Execute(func() (int, error) {
			return w.post(ctx, rawPayload)
		})
		if err == nil {
			return nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(ErrCircuitOpen)
		}
		var de *deliveryError
		if errors.As(err, &de) && de.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		w.logger.WithError(err).Warnf("Webhook delivery failed. Retrying in %v", next)
	}
	return backoff.RetryNotify(operation, policy, notify)
}

func (w *WebhookWorker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("webhook: could not build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &deliveryError{StatusCode: resp.StatusCode}
	}
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
