package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades admin clients to a websocket event feed.
type Handler struct {
	hub      *Hub
	resolver *auth.Resolver
}

func NewHandler(hub *Hub, resolver *auth.Resolver) *Handler {
	return &Handler{hub: hub, resolver: resolver}
}

// Subscribe godoc
// @Summary Subscribe to catalog change events
// @Tags Events
// @Security ApiKeyAuth
// @Router /events [get]
func (h *Handler) Subscribe(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	if !ac.IsAdmin() {
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events_upgrade_failed error=%q", err)
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	// Drain control frames until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/events", h.Subscribe)
}
