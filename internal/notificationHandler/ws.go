package handler

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	cust_middleware "storelink/internal/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsEvent struct {
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]string) // conn -> owner user id
)

// StreamNotifications upgrades the connection and keeps it registered until
// the client goes away. Pushes are best effort; the notifications table is
// the source of truth.
func StreamNotifications(c echo.Context) error {
	userID, ok := cust_middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = userID
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
	return nil
}

func broadcast(event wsEvent) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}

func broadcastTo(userID string, event wsEvent) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn, owner := range wsClients {
		if owner != userID {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
