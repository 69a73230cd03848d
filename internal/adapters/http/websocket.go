package http

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/nats-io/nats.go"

	natsadapter "github.com/stridemap/stridemap/internal/adapters/nats"
	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/metrics"
)

// WebSocketHandler returns a handler that upgrades to WebSocket and
// relays paths-changed events to sidebar clients. On connect the
// client receives the current snapshot, then every subsequent change
// as it is published.
func WebSocketHandler(deps *Dependencies) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()

		remoteAddr := c.RemoteAddr().String()
		log.Printf("ws client connected: %s", remoteAddr)
		metrics.ActiveWebSockets.Inc()
		defer metrics.ActiveWebSockets.Dec()

		var mu sync.Mutex
		writeJSON := func(v interface{}) error {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			return c.WriteMessage(websocket.TextMessage, data)
		}

		// Initial snapshot so the sidebar renders without waiting for
		// the first change.
		if deps.Annotations != nil {
			snapshot := domain.PathsChanged{
				Paths:   deps.Annotations.ListPaths(),
				Summary: deps.Annotations.Summary(),
			}
			if err := writeJSON(snapshot); err != nil {
				return
			}
		}

		var sub *nats.Subscription
		if deps.NATS != nil {
			var err error
			sub, err = deps.NATS.Subscribe(natsadapter.SubjectPathsChanged, func(msg *nats.Msg) {
				_ = writeJSON(json.RawMessage(msg.Data))
			})
			if err != nil {
				log.Printf("ws subscribe error: %v", err)
				return
			}
		}

		// Keep-alive ping
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					mu.Lock()
					err := c.WriteMessage(websocket.PingMessage, nil)
					mu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		// The feed is server-push only; reading just detects disconnect.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		close(done)
		if sub != nil {
			_ = sub.Unsubscribe()
		}
		log.Printf("ws client disconnected: %s", remoteAddr)
	}
}
