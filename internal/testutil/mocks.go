package testutil

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/owsmerge/internal/pos"
)

// MockTagger mocks the POS tagging provider for testing
type MockTagger struct {
	// Tokens maps input text to the token sequence to return
	Tokens map[string][]pos.Token
	// Errors maps input text to an error to return
	Errors map[string]error
	// Calls records every Tag invocation in order
	Calls []string
}

// NewMockTagger creates an empty mock tagger
func NewMockTagger() *MockTagger {
	return &MockTagger{
		Tokens: make(map[string][]pos.Token),
		Errors: make(map[string]error),
	}
}

// Tag mocks the tagging API
func (m *MockTagger) Tag(ctx context.Context, text string) ([]pos.Token, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Tag: %s", text))

	if err, ok := m.Errors[text]; ok {
		return nil, err
	}

	if tokens, ok := m.Tokens[text]; ok {
		return tokens, nil
	}

	// Default: every whitespace-separated word is a NOUN with itself
	// (lower-cased, punctuation stripped) as lemma
	var tokens []pos.Token
	for _, field := range strings.Fields(text) {
		surface := strings.Trim(field, ".,!?;:\"'")
		tokens = append(tokens, pos.Token{
			Text:  surface,
			Lemma: strings.ToLower(surface),
			Tag:   "NOUN",
		})
	}
	return tokens, nil
}

// Name returns the name of the mock provider
func (m *MockTagger) Name() string {
	return "mock"
}
