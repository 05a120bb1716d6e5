package handler

import (
	"github.com/gin-gonic/gin"

	"battery-shipment-monitor/internal/realtime"
)

// StreamHandler exposes the websocket endpoint dashboards subscribe to.
type StreamHandler struct {
	hub *realtime.Hub
}

func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

func (h *StreamHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stream", h.hub.ServeWS)
}
