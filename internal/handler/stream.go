package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"tradejournal/internal/stream"
)

type StreamHandler struct {
	Hub    *stream.Hub
	Logger *zap.Logger
}

func (h *StreamHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/stream", h.subscribe)
}

// @Summary Subscribe to journal change events over a websocket
// @Tags stream
// @Success 101 {string} string "switching protocols"
// @Router /api/v1/stream [get]
func (h *StreamHandler) subscribe(c *gin.Context) {
	if h.Hub == nil {
		Error(c, http.StatusServiceUnavailable, "stream disabled", nil)
		return
	}
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("websocket accept failed", zap.Error(err))
		}
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	events, cancel := h.Hub.Subscribe()
	defer cancel()

	ctx := c.Request.Context()
	// Drain reads so pings and close frames are processed.
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				cancel()
				return
			}
		}
	}()

	for ev := range events {
		writeCtx, done := context.WithTimeout(ctx, 5*time.Second)
		err := wsjson.Write(writeCtx, conn, ev)
		done()
		if err != nil {
			return
		}
	}
}
