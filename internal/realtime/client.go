package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/etraffic/internal/geo"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	authTimeout    = 5 * time.Second
)

// inboundMessage - сообщение от клиента
type inboundMessage struct {
	Type      string   `json:"type"`
	Token     string   `json:"token,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Channel   string   `json:"channel,omitempty"`
}

type directMessage struct {
	client *Client
	msg    Message
}

// Client - одно WebSocket-соединение
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Message

	mu       sync.RWMutex
	userID   uuid.UUID
	location *geo.Coordinate
	channels map[string]struct{}
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan Message, 256),
		channels: make(map[string]struct{}),
	}
}

// wants решает, нужен ли клиенту инцидент из области area в точке at
func (c *Client) wants(area string, at geo.Coordinate, radiusMeters float64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.channels[ChannelIncidents]; ok {
		return true
	}
	if _, ok := c.channels[area]; ok {
		return true
	}
	return c.location != nil && geo.DistanceMeters(*c.location, at) <= radiusMeters
}

// reply отправляет сообщение этому клиенту через цикл хаба
func (c *Client) reply(msg Message) {
	select {
	case c.hub.direct <- directMessage{client: c, msg: msg}:
	case <-c.hub.done:
	}
}

func (c *Client) handle(in inboundMessage) {
	switch in.Type {
	case "authenticate":
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		user, err := c.hub.auth.Authenticate(ctx, in.Token)
		cancel()
		if err != nil || user.IsBanned {
			c.reply(Message{Type: "error", Message: "authentication failed"})
			return
		}
		c.mu.Lock()
		c.userID = user.ID
		c.mu.Unlock()
		c.reply(Message{Type: "authenticated"})

	case "update_location":
		if in.Latitude == nil || in.Longitude == nil {
			c.reply(Message{Type: "error", Message: "latitude and longitude are required"})
			return
		}
		loc := geo.Coordinate{Latitude: *in.Latitude, Longitude: *in.Longitude}
		channel := geo.AreaToken(loc)
		c.mu.Lock()
		c.location = &loc
		c.channels[channel] = struct{}{}
		c.mu.Unlock()
		c.reply(Message{Type: "location_updated", Channel: channel})

	case "subscribe":
		if in.Channel == "" {
			return
		}
		c.mu.Lock()
		c.channels[in.Channel] = struct{}{}
		c.mu.Unlock()
		c.reply(Message{Type: "subscribed", Channel: in.Channel})

	case "unsubscribe":
		if in.Channel == "" {
			return
		}
		c.mu.Lock()
		delete(c.channels, in.Channel)
		c.mu.Unlock()
		c.reply(Message{Type: "unsubscribed", Channel: in.Channel})

	default:
		c.reply(Message{Type: "error", Message: "unknown message type"})
	}
}

// readPump читает сообщения клиента до закрытия соединения
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in inboundMessage
		if err := c.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Debug("Websocket closed unexpectedly")
			}
			return
		}
		c.handle(in)
	}
}

// writePump отправляет сообщения хаба и пинги
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// хаб закрыл канал
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
