// internal/interfaces/http/handlers/notifications.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/notify"
)

// NotificationHandler streams store notifications to the client
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// Stream handles GET /notifications/stream as server-sent events. The
// connection stays open until the client goes away.
func (h *NotificationHandler) Stream(c *gin.Context) {
	ch := make(chan notify.Notification, 16)
	unsubscribe := h.hub.Subscribe(func(n notify.Notification) {
		if n.Message == "" {
			return
		}
		select {
		case ch <- n:
		default:
			// Slow consumer, drop rather than block the stores
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case n := <-ch:
			c.SSEvent("notification", n)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
