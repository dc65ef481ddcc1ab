// Package notifications reparte avisos en tiempo real a los clientes
// conectados por WebSocket (hoy: cancelaciones de agenda de un vet).
package notifications

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Notice es el payload que ve el cliente. Kind identifica el tipo de
// aviso para que el front decida cómo mostrarlo.
type Notice struct {
	Kind    string    `json:"kind"`
	VetID   string    `json:"vet_id,omitempty"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

const KindVetCancel = "vet-cancel"

type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
	now      func() time.Time

	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// el front corre en otro origin (SPA); el acceso real lo
			// controla la sesión, no el Origin header
			CheckOrigin: func(*http.Request) bool { return true },
		},
		now:   time.Now,
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// HandleWS hace el upgrade y retiene la conexión hasta que el peer la
// cierre. No se leen mensajes entrantes salvo para detectar el cierre.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("ws upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()
	h.logger.Info("ws client connected", zap.Int("total", total))

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastVetCancel avisa a todos los conectados que un vet canceló un
// horario. Una conexión que falla al escribir se cierra y se olvida.
func (h *Hub) BroadcastVetCancel(vetID string) {
	h.broadcast(Notice{
		Kind:    KindVetCancel,
		VetID:   vetID,
		Message: "El veterinario canceló un horario; revisa tus citas.",
		SentAt:  h.now(),
	})
}

func (h *Hub) broadcast(n Notice) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	var dead []*websocket.Conn
	for _, c := range conns {
		if err := c.WriteJSON(n); err != nil {
			dead = append(dead, c)
		}
	}

	if len(dead) > 0 {
		h.mu.Lock()
		for _, c := range dead {
			delete(h.conns, c)
			_ = c.Close()
		}
		h.mu.Unlock()
	}
}

// ClientCount existe para los tests y el endpoint de salud.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
