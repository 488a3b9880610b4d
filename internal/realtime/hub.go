// Package realtime доставляет новые инциденты подключённым клиентам по WebSocket.
package realtime

//go:generate mockgen -source=hub.go -destination=mocks/hub.go -package=mocks

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// ChannelIncidents - подписка на все инциденты без фильтра по месту
	ChannelIncidents = "incidents"

	periodicUpdateLimit = 50
)

// Authenticator разбирает токен клиента
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// IncidentLister отдаёт последние активные инциденты для периодической рассылки
type IncidentLister interface {
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
}

// Message - исходящее сообщение
type Message struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type HubConfig struct {
	PushRadiusMeters  float64
	BroadcastInterval time.Duration
	AllowedOrigins    []string
}

// Hub управляет WebSocket-соединениями
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	direct     chan directMessage
	incidents  chan models.PublicIncident
	done       chan struct{}
	mutex      sync.RWMutex

	auth     Authenticator
	lister   IncidentLister
	logger   *logrus.Logger
	cfg      HubConfig
	upgrader websocket.Upgrader
}

func NewHub(auth Authenticator, lister IncidentLister, logger *logrus.Logger, cfg HubConfig) *Hub {
	if cfg.PushRadiusMeters <= 0 {
		cfg.PushRadiusMeters = 5000
	}
	if cfg.BroadcastInterval <= 0 {
		cfg.BroadcastInterval = 30 * time.Second
	}

	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 16),
		direct:     make(chan directMessage, 64),
		incidents:  make(chan models.PublicIncident, 64),
		done:       make(chan struct{}),
		auth:       auth,
		lister:     lister,
		logger:     logger,
		cfg:        cfg,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// HandleWebSocket переводит запрос в WebSocket и регистрирует клиента
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	client := newClient(h, conn)
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Deliver ставит инцидент в очередь рассылки; при переполнении очереди инцидент отбрасывается
func (h *Hub) Deliver(incident models.PublicIncident) {
	select {
	case h.incidents <- incident:
	default:
		h.logger.WithField("incident_id", incident.ID).Warn("Realtime queue is full, dropping incident")
	}
}

// ClientCount - число подключённых клиентов
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Run обслуживает регистрацию и рассылку до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	go h.runPeriodicUpdates(ctx)
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			return
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.send(client, Message{Type: "connected", Message: "Connected to ETraffic real-time updates"})
			h.mutex.Unlock()
		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
		case dm := <-h.direct:
			h.mutex.Lock()
			if _, ok := h.clients[dm.client]; ok {
				h.send(dm.client, dm.msg)
			}
			h.mutex.Unlock()
		case incident := <-h.incidents:
			h.fanOut(incident)
		case message := <-h.broadcast:
			h.sendAll(message)
		}
	}
}

// fanOut отправляет инцидент клиентам, подписанным на его область или на все,
// и клиентам, чьё последнее известное положение в радиусе PushRadiusMeters.
func (h *Hub) fanOut(incident models.PublicIncident) {
	at := geo.Coordinate{Latitude: incident.Latitude, Longitude: incident.Longitude}
	area := geo.AreaToken(at)
	msg := Message{Type: "new_incident", Channel: area, Data: incident}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		if !client.wants(area, at, h.cfg.PushRadiusMeters) {
			continue
		}
		h.send(client, msg)
	}
}

func (h *Hub) sendAll(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		h.send(client, msg)
	}
}

// send вызывается только из Run под h.mutex; медленный клиент отключается
func (h *Hub) send(client *Client, msg Message) {
	select {
	case client.send <- msg:
	default:
		close(client.send)
		delete(h.clients, client)
	}
}

func (h *Hub) runPeriodicUpdates(ctx context.Context) {
	ticker := time.NewTicker(h.cfg.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if h.ClientCount() == 0 {
				continue
			}
			incidents, err := h.lister.ListIncidents(ctx, models.IncidentFilter{
				Status: models.IncidentStatusActive,
				Limit:  periodicUpdateLimit,
			})
			if err != nil {
				h.logger.WithError(err).Error("Failed to load incidents for periodic update")
				continue
			}
			if len(incidents) == 0 {
				continue
			}

			updates := make([]models.PublicIncident, len(incidents))
			for i, inc := range incidents {
				updates[i] = inc.Public()
			}
			select {
			case h.broadcast <- Message{Type: "incidents_update", Data: updates}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
