package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tanya/tanya/config"
	httputils "tanya/tanya/utils/http"
	"tanya/tanya/utils/logging"
)

type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(cfg config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete executes a single non-streaming chat completion request.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	defer logging.LogDuration(ctx, "openai_complete")()

	req := ChatRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	var parsed openAIResponse
	err := httputils.PostJSONWithAuth(ctx, c.httpClient, c.baseURL+"/chat/completions", c.apiKey, req, &parsed)
	if err != nil {
		var se *httputils.StatusError
		if errors.As(err, &se) {
			return "", &GatewayError{StatusCode: se.Code, Body: se.Body}
		}
		return "", &GatewayError{Body: err.Error()}
	}

	if len(parsed.Choices) == 0 {
		return "", &GatewayError{Body: "no choices in completion response"}
	}
	return parsed.Choices[0].Message.Content, nil
}
