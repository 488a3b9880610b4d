package realtime

//go:generate mockgen -source=broadcaster.go -destination=mocks/broadcaster.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

// SubjectIncidentCreated - subject NATS для новых инцидентов
const SubjectIncidentCreated = "etraffic.incidents.created"

// Broadcaster - транспорт рассылки новых инцидентов, выбирается один раз при старте
type Broadcaster interface {
	BroadcastIncident(ctx context.Context, incident *models.Incident) error
}

// LocalBroadcaster отдаёт инцидент напрямую хабу этого процесса
type LocalBroadcaster struct {
	hub *Hub
}

func NewLocalBroadcaster(hub *Hub) *LocalBroadcaster {
	return &LocalBroadcaster{hub: hub}
}

func (b *LocalBroadcaster) BroadcastIncident(_ context.Context, incident *models.Incident) error {
	b.hub.Deliver(incident.Public())
	return nil
}

// NATSBroadcaster публикует публичную проекцию инцидента в NATS; каждая реплика API получает его через SubscribeNATS
type NATSBroadcaster struct {
	conn    *nats.Conn
	subject string
}

func NewNATSBroadcaster(conn *nats.Conn) *NATSBroadcaster {
	return &NATSBroadcaster{conn: conn, subject: SubjectIncidentCreated}
}

func (b *NATSBroadcaster) BroadcastIncident(_ context.Context, incident *models.Incident) error {
	payload, err := json.Marshal(incident.Public())
	if err != nil {
		return fmt.Errorf("failed to marshal incident for NATS: %w", err)
	}
	if err := b.conn.Publish(b.subject, payload); err != nil {
		return fmt.Errorf("failed to publish incident to NATS: %w", err)
	}
	return nil
}

// SubscribeNATS доставляет в хаб инциденты, опубликованные любой репликой
func (h *Hub) SubscribeNATS(conn *nats.Conn) (*nats.Subscription, error) {
	sub, err := conn.Subscribe(SubjectIncidentCreated, func(msg *nats.Msg) {
		var incident models.PublicIncident
		if err := json.Unmarshal(msg.Data, &incident); err != nil {
			h.logger.WithError(err).Warn("Failed to decode incident from NATS")
			return
		}
		h.Deliver(incident)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", SubjectIncidentCreated, err)
	}

	h.logger.WithFields(logrus.Fields{"subject": SubjectIncidentCreated}).Info("Subscribed to incident stream")
	return sub, nil
}
