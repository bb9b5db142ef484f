package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// assistantSystemPrompt frames every single-turn exchange. The assistant has
// no memory between turns; each request carries only this prompt and the
// user's message.
const assistantSystemPrompt = "You are a mental wellness assistant providing coping strategies, " +
	"lifestyle tips, and motivational support. Respond to the user message " +
	"with helpful and encouraging guidance."

// AssistantFallbackReply is returned to the client when the model call fails.
const AssistantFallbackReply = "I'm sorry, but I encountered an error. Please try again later."

// AssistantClient wraps the hosted language model behind a single-turn call.
type AssistantClient struct {
	model llms.Model
}

var assistantClient *AssistantClient

// InitAssistant configures the shared assistant client. baseURL may point at
// any OpenAI-compatible endpoint; empty means the default OpenAI API.
func InitAssistant(apiKey, baseURL, model string) error {
	if apiKey == "" {
		return fmt.Errorf("assistant API key is empty")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create assistant client: %w", err)
	}

	assistantClient = &AssistantClient{model: llm}
	return nil
}

// AssistantReady reports whether the assistant has been configured.
func AssistantReady() bool {
	return assistantClient != nil
}

// AssistantReply forwards one user message to the model and returns its reply.
func AssistantReply(ctx context.Context, message string) (string, error) {
	if assistantClient == nil {
		return "", fmt.Errorf("assistant not configured")
	}

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, assistantSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, message),
	}

	resp, err := assistantClient.model.GenerateContent(ctx, content, llms.WithMaxTokens(512))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	reply := strings.TrimSpace(resp.Choices[0].Content)
	if reply == "" {
		return "", fmt.Errorf("model returned an empty reply")
	}
	return reply, nil
}
