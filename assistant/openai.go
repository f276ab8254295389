package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIGenerator answers grounding prompts through the OpenAI chat
// completions API.
type OpenAIGenerator struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAIGenerator builds a generator for the given API key and model
// identifier. An empty model falls back to gpt-4o-mini.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	chatModel := openai.ChatModelGPT4oMini
	if model != "" {
		chatModel = openai.ChatModel(model)
	}
	return &OpenAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  chatModel,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	chatCompletion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: g.model,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	answer := chatCompletion.Choices[0].Message.Content
	if answer == "" {
		return "", fmt.Errorf("OpenAI returned empty response. Finish reason: %s", chatCompletion.Choices[0].FinishReason)
	}
	return answer, nil
}
