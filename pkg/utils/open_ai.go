package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const extractionSystemPrompt = "You extract structured travel requests. Reply with one JSON object and nothing else."

// OpenAICompletionClient talks to any OpenAI-compatible chat endpoint
// (OpenAI, DeepSeek, a local Ollama server).
type OpenAICompletionClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAICompletionClient creates a client. An empty baseURL keeps the
// library default (api.openai.com).
func NewOpenAICompletionClient(apiKey, baseURL, model string, temperature float32) *OpenAICompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

func (c *OpenAICompletionClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrUnexpectedBehaviorOfAI
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAICompletionClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}

func (c *OpenAICompletionClient) Close() error { return nil }
