package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// newUpgrader creates a websocket.Upgrader that validates the Origin header
// against the provided allowlist. If allowedOrigins contains "*", all
// origins are permitted. Otherwise the request's Origin header must match
// one of the listed values exactly.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowAll := false
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
			break
		}
		originSet[o] = struct{}{}
	}

	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if allowAll {
				return true
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				return false
			}
			_, ok := originSet[origin]
			return ok
		},
	}
}

// WSHandler implements GET /ws -- upgrades to WebSocket and subscribes the
// connection to the broadcast bus. Deliberately outside the api_key check:
// spec §9 does not mandate auth on this route.
type WSHandler struct {
	facade   Facade
	upgrader websocket.Upgrader
}

func NewWSHandler(f Facade, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		facade:   f,
		upgrader: newUpgrader(allowedOrigins),
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	h.facade.SubscribeWS(conn, r.RemoteAddr)
}
