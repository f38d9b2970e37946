package adminapi

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gogevgelija/ggadmin/internal/logging"
)

// EventsPath is the WebSocket endpoint for validation-result pushes.
const EventsPath = "/api/events"

// SubscribeValidation opens a WebSocket subscription for validation results.
// The returned channel delivers every result the backend pushes and closes
// when the connection drops or ctx is cancelled. The caller owns nothing to
// clean up beyond cancelling ctx.
//
// A failed subscription is reported once as an error; the tab UI then falls
// back to its fixed-delay error scan.
func (c *Client) SubscribeValidation(ctx context.Context) (<-chan ValidationResult, error) {
	wsURL := httpToWS(c.BaseURL) + EventsPath

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.BaseURL)
	}
	logging.LogConnection(wsURL, "events_subscribed")

	events := make(chan ValidationResult)

	// Close the connection when the caller is done; this also unblocks the
	// read loop.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				logging.Debug("Validation event stream closed", zap.Error(err))
				return
			}

			var result ValidationResult
			if err := json.Unmarshal(data, &result); err != nil {
				logging.Debug("Skipping malformed validation event", zap.Error(err))
				continue
			}
			logging.LogValidationEvent(wsURL, result.FormID, len(result.Errors))

			select {
			case events <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// httpToWS rewrites an http(s) base URL to its ws(s) equivalent.
func httpToWS(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return "ws://" + baseURL
	}
}
