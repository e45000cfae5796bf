package handlers

import (
	"io"
	"net/http"

	"github.com/budgetplanner/budget_planner_app/internal/events"
	"github.com/gin-gonic/gin"
)

// eventsHandler bridges the in-process event bus to HTTP. UI shells (a tray
// icon, a global shortcut daemon) POST triggers here; open frontends hold an
// SSE stream and react to them.
type eventsHandler struct {
	bus *events.Bus
}

func newEventsHandler(bus *events.Bus) *eventsHandler {
	return &eventsHandler{bus: bus}
}

// registerEventRoutes registers the trigger and stream routes.
func registerEventRoutes(rg *gin.RouterGroup, bus *events.Bus) {
	h := newEventsHandler(bus)

	ev := rg.Group("/events")
	{
		ev.POST("/open-add-record", h.triggerOpenAddRecord)
		ev.GET("/stream", h.stream)
	}
}

// triggerOpenAddRecord godoc
// @Summary Ask open frontends to show the add-record form
// @Description Publishes the open-add-record event; dropped when no one listens
// @Tags events
// @Produce  json
// @Success 202 {object} map[string]string
// @Router /events/open-add-record [post]
func (h *eventsHandler) triggerOpenAddRecord(c *gin.Context) {
	h.bus.Publish(events.TopicOpenAddRecord)
	c.JSON(http.StatusAccepted, gin.H{"status": "published"})
}

// stream godoc
// @Summary Subscribe to UI events over SSE
// @Description Streams bus events to the client until it disconnects
// @Tags events
// @Produce  text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events/stream [get]
func (h *eventsHandler) stream(c *gin.Context) {
	ch, cancel := h.bus.Subscribe(events.TopicOpenAddRecord)
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case topic, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", topic)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
