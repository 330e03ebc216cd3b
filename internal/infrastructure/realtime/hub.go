// Package realtime difunde los cambios de stock confirmados a los clientes websocket conectados.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
)

var _ inventory.StockNotifier = (*Hub)(nil)

// Client lo que el hub necesita de una conexión (*websocket.Conn lo cumple).
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub mantiene los clientes conectados y les reenvía cada evento de stock.
type Hub struct {
	clients    map[Client]bool
	register   chan Client
	unregister chan Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
	log        *logger.Logger
}

// NewHub crea el hub. buffer es la cantidad de eventos pendientes antes de descartar.
func NewHub(buffer int, log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		register:   make(chan Client),
		unregister: make(chan Client),
		broadcast:  make(chan []byte, buffer),
		done:       make(chan struct{}),
		log:        log.Component("ws-hub"),
	}
}

// Run procesa altas, bajas y difusiones hasta que ctx se cancela; entonces cierra todos los clientes.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				_ = c.Close()
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", n).Msg("cliente ws conectado")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				_ = c.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					_ = c.Close()
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register agrega un cliente. Bloquea hasta que Run lo procesa; si Run ya terminó cierra el cliente.
func (h *Hub) Register(c Client) {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.Close()
	}
}

// Unregister elimina y cierra un cliente.
func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Clients cantidad de clientes conectados.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// StockChanged encola el evento sin bloquear; si el buffer está lleno el evento se descarta.
func (h *Hub) StockChanged(ev inventory.StockEvent) {
	msg, err := json.Marshal(struct {
		Type string               `json:"type"`
		Data inventory.StockEvent `json:"data"`
	}{Type: "stock_changed", Data: ev})
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento de stock")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Int64("product_id", ev.ProductID).Msg("buffer ws lleno, evento descartado")
	}
}

// Serve atiende una conexión websocket: la registra y la mantiene hasta que el cliente cierra.
func (h *Hub) Serve(conn *websocket.Conn) {
	h.Register(conn)
	defer h.Unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
