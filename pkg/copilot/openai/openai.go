// Package openai implements the copilot.ChatClient interface against
// an OpenAI-compatible chat completion endpoint.
package openai

import (
	"context"
	"fmt"

	"github.com/wavo-hq/onboarding/backend/pkg/copilot"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const systemPrompt = "You are the Wavo onboarding co-pilot. Help the user through the " +
	"wizard: organization, team, user, connectors, semantic layer, artist roster, review. " +
	"Be brief and concrete. Skipping fields is always safe."

// Client talks to an OpenAI-compatible chat endpoint.
type Client struct {
	model string
	chat  *openai.Client
}

// NewClientParams configures a Client. Model defaults to gpt-4o-mini;
// BaseURL is optional and overrides the public endpoint.
type NewClientParams struct {
	Model   string
	BaseURL string
	APIKey  string
}

// NewClient builds a chat client, or an error when no API key is
// configured.
func NewClient(params NewClientParams) (*Client, error) {
	if params.APIKey == "" {
		return nil, fmt.Errorf("openai copilot requires an api key")
	}

	options := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
	}
	if params.BaseURL != "" {
		options = append(options, option.WithBaseURL(params.BaseURL))
	}

	model := params.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(options...)
	return &Client{
		model: model,
		chat:  &client,
	}, nil
}

// Reply sends the conversation to the chat model and returns the
// assistant text.
func (c *Client) Reply(ctx context.Context, messages []copilot.Message) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	for _, m := range messages {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	response, err := c.chat.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(0.4),
	})
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
