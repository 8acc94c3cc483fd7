package bridge

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel answers gateway queries when OPENAI_MODEL is not set.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are the query interface of a Pendle Finance integration agent.

Your role:
- Answer questions about Pendle markets, PT/YT/SY tokens, liquidity provision and yield trading
- Explain what the agent's tools do and which tool fits a given task
- Be direct and concise in your answers
- If you don't know something, say so honestly

You cannot sign or submit transactions from a conversation; point users at the corresponding tool instead.`

// OpenAIProcessor answers free-text gateway queries with a chat
// completion.
type OpenAIProcessor struct {
	client *openai.Client
	model  string
}

// NewOpenAIProcessor wraps an OpenAI client. An empty model falls back
// to DefaultModel.
func NewOpenAIProcessor(client *openai.Client, model string) *OpenAIProcessor {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIProcessor{client: client, model: model}
}

func (p *OpenAIProcessor) Process(ctx context.Context, text string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
