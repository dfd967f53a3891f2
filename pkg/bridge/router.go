package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// chatRequest is the POST /chat body. The request ID lets the backend
// correlate follow-up traffic from the same utterance.
type chatRequest struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Ask routes a free-text message. Messages mentioning courses or FAQs are
// answered locally through the matching text operation, first match wins,
// everything else is delegated to the backend chat endpoint. Matching is
// on literal substrings, so 'discourse' lands on the course branch too,
// which mirrors how the assistant behaves in production.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "course"):
		return c.CoursesText(ctx), nil
	case strings.Contains(lowered, "faq"):
		return c.FAQsText(ctx), nil
	}
	payload, err := c.post(ctx, "/chat", chatRequest{Message: message, RequestID: uuid.NewString()}, callOptions{})
	if err != nil {
		debugLogErr(err)
		return "", fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}
	return chatReplyText(payload), nil
}

// chatReplyText digs the reply text out of a chat response. The backend
// has answered with a few different shapes over time, so probe the known
// field names and fall back to the whole document.
func chatReplyText(payload Payload) string {
	if !payload.IsJSON() {
		return payload.Text()
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload.JSON(), &probe); err != nil {
		return payload.String()
	}
	for _, field := range []string{"reply", "response", "message", "answer"} {
		raw, found := probe[field]
		if !found {
			continue
		}
		var reply string
		if err := json.Unmarshal(raw, &reply); err == nil && reply != "" {
			return reply
		}
	}
	return payload.String()
}
