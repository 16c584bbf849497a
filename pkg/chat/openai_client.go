package chat

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) ModelClient {
	return NewOpenAIClientWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAIClientWithConfig(cfg openai.ClientConfig, model string) ModelClient {
	return &openAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateContent re-encodes the completion so it goes through the same
// decoder as every other provider.
func (c *openAIClient) GenerateContent(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	return json.Marshal(resp)
}
