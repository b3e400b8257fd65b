package live

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/coffee-fleet/internal/constants"
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

const (
	EventTelemetry = "telemetry"
	EventAlert     = "alert"
)

type (
	IMetricsService interface {
		SetLiveClients(count int)
	}
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	conn       *websocket.Conn
	facilityID entities.FacilityID
	send       chan []byte
}

// Hub fans out facility events to websocket subscribers of that facility.
type Hub struct {
	metricsService IMetricsService
	upgrader       websocket.Upgrader
	pingPeriod     time.Duration
	pongWait       time.Duration

	mx          sync.RWMutex
	subscribers map[entities.FacilityID]map[*client]struct{}
	count       int
}

func NewHub(metricsService IMetricsService) *Hub {
	return &Hub{
		metricsService: metricsService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		pingPeriod: constants.LivePingPeriod,
		pongWait:   constants.LivePongWait,

		subscribers: make(map[entities.FacilityID]map[*client]struct{}),
	}
}

func (h *Hub) BroadcastTelemetry(message entities.TelemetryMessage) {
	h.broadcast(message.FacilityID, Event{Type: EventTelemetry, Payload: message})
}

func (h *Hub) BroadcastAlert(alert entities.Alert) {
	h.broadcast(alert.FacilityID, Event{Type: EventAlert, Payload: alert})
}

// Count returns number of connected subscribers.
func (h *Hub) Count() int {
	h.mx.RLock()
	defer h.mx.RUnlock()

	return h.count
}

// Serve upgrades request and streams facility events until client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, facilityID entities.FacilityID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("Serve: %w", err)
	}

	c := &client{
		conn:       conn,
		facilityID: facilityID,
		send:       make(chan []byte, constants.LiveSendBuffer),
	}
	h.register(c)
	defer h.unregister(c)

	go h.writePump(c)
	h.readPump(c)

	return nil
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mx.Lock()
	defer h.mx.Unlock()

	for facilityID, clients := range h.subscribers {
		for c := range clients {
			close(c.send)
		}
		delete(h.subscribers, facilityID)
	}

	h.count = 0
	h.metricsService.SetLiveClients(0)
}

func (h *Hub) broadcast(facilityID entities.FacilityID, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("broadcast: marshal event error")
		return
	}

	var slow []*client
	h.mx.RLock()
	for c := range h.subscribers[facilityID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mx.RUnlock()

	for _, c := range slow {
		log.Warn().
			Str("remoteAddr", c.conn.RemoteAddr().String()).
			Msg("broadcast: live client is too slow, dropped")

		h.unregister(c)
	}
}

func (h *Hub) register(c *client) {
	h.mx.Lock()
	defer h.mx.Unlock()

	if _, ok := h.subscribers[c.facilityID]; !ok {
		h.subscribers[c.facilityID] = make(map[*client]struct{})
	}

	h.subscribers[c.facilityID][c] = struct{}{}
	h.count++
	h.metricsService.SetLiveClients(h.count)
}

func (h *Hub) unregister(c *client) {
	h.mx.Lock()
	defer h.mx.Unlock()

	clients, ok := h.subscribers[c.facilityID]
	if !ok {
		return
	}

	if _, ok = clients[c]; !ok {
		return
	}

	delete(clients, c)
	if len(clients) == 0 {
		delete(h.subscribers, c.facilityID)
	}

	close(c.send)
	h.count--
	h.metricsService.SetLiveClients(h.count)
}

// readPump drains client frames, it only keeps read deadline alive.
func (h *Hub) readPump(c *client) {
	defer c.conn.Close()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	c.conn.SetPongHandler(func(_ string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("readPump: live client read error")
			}

			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(constants.LiveWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug().Err(err).Msg("writePump: write live event error")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(constants.LiveWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Msg("writePump: ping live client error")
				return
			}
		}
	}
}
