// order_websocket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cowebsLB/mounifull/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Clients are tracked with the session they authenticated as, so cart
// badge updates only reach that shopper's open tabs while new-order
// events fan out to everyone (the dashboard).
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]string)
)

func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = c.GetString("session_id")
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastNewOrder pushes a freshly persisted order to every connected
// client.
func BroadcastNewOrder(order models.Order) {
	payload, err := json.Marshal(gin.H{"event": "new_order", "order": order})
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		conn.WriteMessage(websocket.TextMessage, payload)
	}
}

// BroadcastCartChanged pushes the new badge count to the session's own
// connections. Wired as a cart store subscriber at startup.
func BroadcastCartChanged(sessionID string, badgeCount int) {
	payload, err := json.Marshal(gin.H{"event": "cart_changed", "badge_count": badgeCount})
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn, session := range wsClients {
		if session == sessionID {
			conn.WriteMessage(websocket.TextMessage, payload)
		}
	}
}
