package llm

import (
	"context"
	"fmt"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// Client is a single-shot completion gateway: one request, one generated
// text, no retries.
type Client interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// GatewayError carries the upstream failure of a completion call. The
// body is for server-side logs only and must never reach a client.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("completion request failed: %s", e.Body)
	}
	return fmt.Sprintf("completion request failed: status %d - %s", e.StatusCode, e.Body)
}
