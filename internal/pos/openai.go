package pos

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

const tagTimeout = 30 * time.Second

// OpenAITagger tags text using the OpenAI chat completion API
type OpenAITagger struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAITagger creates a new OpenAI-backed tagger. An empty model
// selects gpt-4o-mini.
func NewOpenAITagger(apiKey, model string) *OpenAITagger {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITagger{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "openai-tagger",
		}),
	}
}

// Name returns the name of the tagging provider
func (t *OpenAITagger) Name() string {
	return "openai"
}

// Tag analyzes the given text and returns one token per word, in order
func (t *OpenAITagger) Tag(ctx context.Context, text string) ([]Token, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	ctx, cancel := context.WithTimeout(ctx, tagTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a part-of-speech tagger. Tokenize the given English text " +
					"and respond with only a JSON array, one object per token, in text order. " +
					"Each object has the fields \"text\" (the surface form), \"lemma\" (the " +
					"dictionary base form) and \"tag\" (a Universal POS tag such as NOUN, VERB, " +
					"ADJ, ADV, PROPN, PRON, ADP, AUX, DET). No prose, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   1000,
		Temperature: 0,
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	resp := result.(openai.ChatCompletionResponse)

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no tokens returned")
	}

	tokens, err := parseTokens(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tagger response: %w", err)
	}
	return tokens, nil
}

// parseTokens decodes the model's JSON array, tolerating markdown
// code fences some models wrap around JSON output
func parseTokens(content string) ([]Token, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var tokens []Token
	if err := json.Unmarshal([]byte(content), &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
