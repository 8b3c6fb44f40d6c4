package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/recipefinder/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI API for turning free-text messages like
// "2 eggs, some flour and a bit of milk" into a list of ingredient terms.
// A nil *Client is valid: ParseIngredients then falls back to simple
// delimiter splitting, so the bot works without an API key.
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client. Returns nil when apiKey is empty.
func New(apiKey, apiBase, model string) *Client {
	if apiKey == "" {
		return nil
	}

	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger.New(""),
	}
}

// ParseIngredients extracts ingredient names from a free-text message.
// When the client is nil or the API call fails, it falls back to
// SplitIngredients so a user message is never silently dropped.
func (c *Client) ParseIngredients(text string) ([]string, error) {
	if c == nil {
		return SplitIngredients(text), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Extract the ingredient names from the following message. Ignore quantities,
units, and filler words. Return a JSON array of lowercase ingredient name
strings, for example ["eggs", "flour", "milk"]. Only return the JSON array,
no other text.

Message:
%s
`, text)

	c.logger.Debug("Parsing ingredients from text (first 100 chars): %s", truncateString(text, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You extract ingredient names from shopping lists and cooking messages.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.1,
		},
	)

	if err != nil {
		c.logger.Warn("OpenAI parsing failed, falling back to splitting: %v", err)
		return SplitIngredients(text), nil
	}

	if len(resp.Choices) == 0 {
		return SplitIngredients(text), nil
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return SplitIngredients(text), nil
	}

	c.logger.Info("Parsed %d ingredients from message", len(ingredients))
	return ingredients, nil
}

// SplitIngredients is the offline fallback: split on commas, semicolons,
// newlines, and " and ".
func SplitIngredients(text string) []string {
	text = strings.ReplaceAll(text, " and ", ",")
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			ingredients = append(ingredients, part)
		}
	}
	return ingredients
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps
// around JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
