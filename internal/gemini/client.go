// Package gemini wraps the Google GenAI SDK for turn-based chat.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Message roles. These mirror the wire roles of the GenAI API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string
	Content string
}

// Client talks to the Gemini generative-language API.
type Client struct {
	client       *genai.Client
	model        string
	systemPrompt string
}

// NewClient creates a Gemini chat client.
func NewClient(ctx context.Context, apiKey, model, systemPrompt string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}, nil
}

// Close closes the underlying GenAI client. The GenAI SDK client holds
// no closable resources, so this is a no-op.
func (c *Client) Close() error {
	return nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Send submits the conversation so far plus a new user prompt, and returns
// the model's reply text. The returned text is raw: callers normalize it
// before rendering.
func (c *Client) Send(ctx context.Context, history []Message, prompt string) (string, error) {
	contents := toContents(history)
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, c.generateConfig())
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no content available")
	}
	return text, nil
}

func (c *Client) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if c.systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(c.systemPrompt, genai.RoleUser)
	}
	return cfg
}

// toContents converts chat history into GenAI content turns.
// Unknown roles are treated as user turns rather than dropped.
func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}
