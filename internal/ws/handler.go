package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// The stream is public and carries no site data, only change signals.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades the request and subscribes the connection to hub.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		cl := &client{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
		if !hub.add(cl) {
			conn.Close()
			return
		}

		go cl.writePump()
		cl.readPump()
	}
}
