// Package ollama implements the copilot.ChatClient interface against a
// locally-hosted Ollama server.
package ollama

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wavo-hq/onboarding/backend/pkg/copilot"

	"github.com/ollama/ollama/api"
)

// Client talks to an Ollama chat model.
type Client struct {
	model  string
	client *api.Client
}

// NewClientParams configures a Client. BaseURL is optional; an empty
// value falls back to the OLLAMA_HOST environment default.
type NewClientParams struct {
	Model   string
	BaseURL string
}

// NewClient builds an Ollama-backed chat client.
func NewClient(params NewClientParams) (*Client, error) {
	var cli *api.Client
	if params.BaseURL != "" {
		u, err := url.Parse(params.BaseURL)
		if err != nil {
			return nil, err
		}
		cli = api.NewClient(u, http.DefaultClient)
	} else {
		var err error
		cli, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
	}

	model := params.Model
	if model == "" {
		model = "llama3.2"
	}

	return &Client{
		model:  model,
		client: cli,
	}, nil
}

// Reply sends the conversation to the local model and returns the
// accumulated assistant text.
func (c *Client) Reply(ctx context.Context, messages []copilot.Message) (string, error) {
	msgs := make([]api.Message, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: msgs,
		Stream:   &stream,
		Options:  map[string]any{"temperature": 0.4},
	}

	var reply string
	if err := c.client.Chat(ctx, req, func(cr api.ChatResponse) error {
		reply += cr.Message.Content
		return nil
	}); err != nil {
		return "", err
	}

	return reply, nil
}
