// Package events pushes order lifecycle notifications to connected admin
// dashboards over websocket, so the back office sees new orders without
// waiting for the next poll.
package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"cafe-management/models"
	"cafe-management/utils"
)

const (
	EventOrderCreated  = "order_created"
	EventOrderStatus   = "order_status_changed"
	EventOrderDeleted  = "order_deleted"
	EventMenuSoldOut   = "menu_soldout_changed"
	EventOrdersChanged = "orders_imported"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks connected dashboard clients and fans messages out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) OrderCreated(order models.Order) {
	h.broadcast(Message{Event: EventOrderCreated, Data: order})
}

func (h *Hub) OrderStatusChanged(orderID uint, status string) {
	h.broadcast(Message{
		Event: EventOrderStatus,
		Data: map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		},
	})
}

func (h *Hub) OrderDeleted(orderID uint) {
	h.broadcast(Message{
		Event: EventOrderDeleted,
		Data:  map[string]interface{}{"order_id": orderID},
	})
}

func (h *Hub) MenuSoldOutChanged(menuID uint, soldOut bool) {
	h.broadcast(Message{
		Event: EventMenuSoldOut,
		Data: map[string]interface{}{
			"menu_id":    menuID,
			"is_soldout": soldOut,
		},
	})
}

func (h *Hub) OrdersImported(imported, skipped int) {
	h.broadcast(Message{
		Event: EventOrdersChanged,
		Data: map[string]interface{}{
			"imported": imported,
			"errors":   skipped,
		},
	})
}

func (h *Hub) broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("events: marshal %s: %v", msg.Event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			utils.ErrorLogger.Printf("events: dropping client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
