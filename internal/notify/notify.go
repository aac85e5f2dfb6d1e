// internal/notify/notify.go
package notify

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/pkg/pubsub"
)

// Level classifies a notification the way the UI classifies toasts
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single user-facing message
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Hub fans notifications out to subscribers and mirrors them to the logger.
// It is the gateway's stand-in for the toast layer: stores publish here, the
// front-end on top decides how to render.
type Hub struct {
	subject *pubsub.Subject[Notification]
	logger  *logrus.Logger
}

// NewHub creates a notification hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subject: pubsub.NewSubject(Notification{}),
		logger:  logger,
	}
}

// Subscribe registers a notification handler
func (h *Hub) Subscribe(fn func(Notification)) func() {
	return h.subject.Subscribe(fn)
}

// Success publishes a success notification
func (h *Hub) Success(message string) {
	h.publish(LevelSuccess, message)
}

// Info publishes an informational notification
func (h *Hub) Info(message string) {
	h.publish(LevelInfo, message)
}

// Warning publishes a warning notification
func (h *Hub) Warning(message string) {
	h.publish(LevelWarning, message)
}

// Error publishes an error notification
func (h *Hub) Error(message string) {
	h.publish(LevelError, message)
}

func (h *Hub) publish(level Level, message string) {
	n := Notification{
		Level:   level,
		Message: message,
		Time:    time.Now().UTC(),
	}

	entry := h.logger.WithField("notification", string(level))
	switch level {
	case LevelError:
		entry.Error(message)
	case LevelWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}

	h.subject.Emit(n)
}
