package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// ClientMessage es lo que manda el cliente por el socket.
type ClientMessage struct {
	Action string   `json:"action"` // subscribe | unsubscribe
	Topics []string `json:"topics"`
}

// TopicGuard decide si el usuario puede escuchar un topic.
type TopicGuard func(ctx context.Context, claims auth.Claims, topic string) bool

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

func RegisterRoutes(r chi.Router, hub *Hub, guard TopicGuard) {
	r.Get("/ws", wsHandler(hub, guard))
}

// wsHandler godoc
// @Summary Suscripción en tiempo real
// @Description Upgrade a WebSocket. Mensajes {"action":"subscribe","topics":["users/{id}/notifications"]}.
// @Tags realtime
// @Param Authorization header string false "Bearer token"
// @Param access_token query string false "Bearer token (navegadores)"
// @Success 101
// @Failure 401 {string} string "unauthorized"
// @Router /ws [get]
func wsHandler(hub *Hub, guard TopicGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade ya respondió al cliente.
			return
		}

		// El contexto del request muere al volver del handler.
		ctx := context.WithoutCancel(r.Context())
		sub := hub.Subscribe()

		go writePump(conn, sub)
		readPump(ctx, conn, sub, claims, guard)
	}
}

func readPump(ctx context.Context, conn *websocket.Conn, sub *Subscription, claims auth.Claims, guard TopicGuard) {
	defer func() {
		sub.Close()
		_ = conn.Close()
	}()

	conn.SetReadLimit(4096)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Action {
		case "subscribe":
			allowed := make([]string, 0, len(msg.Topics))
			for _, t := range msg.Topics {
				if guard == nil || guard(ctx, claims, t) {
					allowed = append(allowed, t)
				}
			}
			sub.Add(allowed...)
		case "unsubscribe":
			sub.Remove(msg.Topics...)
		}
	}
}

func writePump(conn *websocket.Conn, sub *Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
