package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/monitoring"
)

// Hub fans new-order events out to connected admin dashboards. Construct one
// in main and share it between the checkout handler and the ws route.
type Hub struct {
	upgrader websocket.Upgrader
	log      *monitoring.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub(log *monitoring.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log:     log,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler upgrades the connection and parks it until the peer hangs up.
// Inbound frames are drained and discarded; the stream is one-way.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// BroadcastOrder pushes the order to every connected client. Dead connections
// are dropped on write failure.
func (h *Hub) BroadcastOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
	if h.log != nil {
		h.log.Debug("order broadcast", map[string]interface{}{
			"order_ref": order.Ref,
			"clients":   len(h.clients),
		})
	}
}
