package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"legalai-backend/internal/legal"
	"legalai-backend/internal/worker"
)

// AuthFailureMessage is shown to the caller when the upstream API rejects
// the configured credential.
const AuthFailureMessage = "Authentication failed. Please check your HF_TOKEN in the .env file."

// Client sends chat completions to an OpenAI-compatible endpoint.
type Client struct {
	client *openai.Client
	model  string
}

type Option func(*openai.ClientConfig)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *openai.ClientConfig) {
		c.HTTPClient = hc
	}
}

func NewClient(apiKey, model, baseURL string, opts ...Option) (*Client, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("completion: model must not be empty")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (c *Client) Model() string { return c.model }

// Complete returns the text of the first choice. The HTTP call runs on a
// worker goroutine and is awaited. An upstream 401 becomes a
// legal.ErrorAuthentication error; every other failure is returned as is.
func (c *Client) Complete(ctx context.Context, messages []legal.Message, maxTokens int) (string, error) {
	return worker.Run(ctx, func(ctx context.Context) (string, error) {
		return c.complete(ctx, messages, maxTokens)
	})
}

func (c *Client) complete(ctx context.Context, messages []legal.Message, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  convertMessages(messages),
		MaxTokens: maxTokens,
	})
	if err != nil {
		if isAuthFailure(err) {
			return "", legal.NewError(legal.ErrorAuthentication, AuthFailureMessage, err)
		}
		return "", fmt.Errorf("completion: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func convertMessages(msgs []legal.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		role := string(m.Role)
		if role == "" {
			role = openai.ChatMessageRoleUser
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}

func isAuthFailure(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusUnauthorized
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusUnauthorized
	}
	return false
}
