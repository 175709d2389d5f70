package pages

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/agric-empower/portal/internal/demo"
	applog "github.com/agric-empower/portal/internal/platform/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// telemetryStream pushes one reading on connect and then every reading the
// feed broadcasts, until the page goes away or the feed stops.
func (h *Handler) telemetryStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		applog.LogWarn(ctx, "websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	readings, cancel := h.cfg.Feed.Subscribe()
	defer cancel()
	applog.LogInfo(ctx, "telemetry stream opened", zap.Int("subscribers", h.cfg.Feed.Subscribers()))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeReading(conn, demo.GenerateTelemetry()); err != nil {
		return
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case reading, ok := <-readings:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed stopped"),
					time.Now().Add(writeWait))
				return
			}
			if err := writeReading(conn, reading); err != nil {
				applog.LogWarn(ctx, "telemetry stream write failed", zap.Error(err))
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func writeReading(conn *websocket.Conn, r demo.Reading) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(r)
}
