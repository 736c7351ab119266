package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cafestaff/services"
	"cafestaff/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	bufferSize = 64
)

// subscribedMessage is the first frame every client receives.
var subscribedMessage = map[string]string{"type": "subscribed"}

// FulfillmentHub pushes fulfillment events to every connected staff browser.
// All writes happen on the Run goroutine.
type FulfillmentHub struct {
	clients    map[*websocket.Conn]uint // conn -> staff id
	broadcast  chan services.FulfillmentEvent
	register   chan subscription
	unregister chan *websocket.Conn
	done       chan struct{}
	once       sync.Once
	upgrader   websocket.Upgrader
	log        *zap.Logger
}

type subscription struct {
	conn    *websocket.Conn
	staffID uint
}

// NewFulfillmentHub builds a hub. checkOrigin may be nil to accept same-host
// origins only.
func NewFulfillmentHub(log *zap.Logger, checkOrigin func(*http.Request) bool) *FulfillmentHub {
	return &FulfillmentHub{
		clients:    make(map[*websocket.Conn]uint),
		broadcast:  make(chan services.FulfillmentEvent, bufferSize),
		register:   make(chan subscription),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader:   websocket.Upgrader{CheckOrigin: checkOrigin},
		log:        log.Named("ws"),
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled.
func (h *FulfillmentHub) Run(ctx context.Context) {
	defer h.shutdown()
	for {
		select {
		case <-ctx.Done():
			return

		case sub := <-h.register:
			h.clients[sub.conn] = sub.staffID
			if err := h.write(sub.conn, subscribedMessage); err != nil {
				h.drop(sub.conn)
			}

		case conn := <-h.unregister:
			h.drop(conn)

		case ev := <-h.broadcast:
			for conn := range h.clients {
				if err := h.write(conn, ev); err != nil {
					h.log.Debug("ws write failed", zap.Error(err))
					h.drop(conn)
				}
			}
		}
	}
}

// Publish queues an event without blocking; a full buffer drops it.
func (h *FulfillmentHub) Publish(ev services.FulfillmentEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("fulfillment event dropped", zap.String("type", ev.Type), zap.Uint("manage_id", ev.ManageID))
	}
}

// HandleWebSocket upgrades GET /staff/ws/fulfillment.
func (h *FulfillmentHub) HandleWebSocket(c *gin.Context) {
	staffID := utils.CurrentStaffID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Info("ws upgrade failed", zap.Error(err))
		return
	}

	select {
	case h.register <- subscription{conn: conn, staffID: staffID}:
	case <-h.done:
		conn.Close()
		return
	}
	go h.readLoop(conn)
}

// readLoop drains client frames so close and ping are processed.
func (h *FulfillmentHub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *FulfillmentHub) write(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

func (h *FulfillmentHub) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

func (h *FulfillmentHub) shutdown() {
	h.once.Do(func() {
		close(h.done)
		for conn := range h.clients {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			conn.Close()
			delete(h.clients, conn)
		}
	})
}
