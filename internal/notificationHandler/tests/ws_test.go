package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	handler "storelink/internal/notificationHandler"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStreamNotificationsRequiresAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/store/notifications/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler.StreamNotifications(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebsocketPush(t *testing.T) {
	requireDB(t)
	owner := insertUser(t)

	e := echo.New()
	asOwner := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": owner}})
			return next(c)
		}
	}
	e.GET("/ws", handler.StreamNotifications, asOwner)

	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// give the server a moment to register the connection in the hub
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, handler.DispatchToUser(context.Background(), owner, "fresh order", "direct"))

	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var event struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	assert.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, owner, event.UserID)
	assert.Equal(t, "fresh order", event.Message)
	assert.Equal(t, "direct", event.Type)

	t.Run("Push Is Scoped To The Recipient", func(t *testing.T) {
		other := insertUser(t)
		assert.NoError(t, handler.DispatchToUser(context.Background(), other, "not yours", "direct"))

		assert.NoError(t, conn.SetReadDeadline(time.Now().Add(500*time.Millisecond)))
		assert.Error(t, conn.ReadJSON(&event))
	})
}
