package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// StockEvent is pushed to connected frontends whenever a stock mutation
// lands, so product lists and low-stock warnings update live.
type StockEvent struct {
	Type        string `json:"type"` // stock_update
	Action      string `json:"action"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	NewStock    int    `json:"newStock"`
	LowStock    bool   `json:"lowStock"`
}

// BroadcastStock serializes a stock event and hands it to the hub without
// blocking the caller.
func (h *Hub) BroadcastStock(ev StockEvent) {
	go func() {
		msg, err := json.Marshal(ev)
		if err != nil {
			return
		}
		h.Broadcast <- msg
	}()
}
