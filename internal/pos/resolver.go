package pos

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Resolver determines a word's part of speech, preferring how the word
// is actually used in a context sentence over the word in isolation
type Resolver struct {
	tagger Tagger
	cache  *Cache
}

// NewResolver creates a resolver on top of a tagging provider
func NewResolver(tagger Tagger) *Resolver {
	return &Resolver{tagger: tagger}
}

// WithCache attaches a persistent label cache to the resolver
func (r *Resolver) WithCache(cache *Cache) *Resolver {
	r.cache = cache
	return r
}

// Resolve returns the display label for word. If sentence is non-empty
// the sentence is tagged and scanned left to right for the first token
// whose lemma matches the word's lemma, or whose surface text matches
// the word verbatim (both case-insensitive). The first match wins; if
// none matches, the word's tag in isolation is used.
func (r *Resolver) Resolve(ctx context.Context, word, sentence string) (string, error) {
	if r.cache != nil {
		if label, ok := r.cache.Get(word, sentence); ok {
			return label, nil
		}
	}

	label, err := r.resolve(ctx, word, sentence)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		if err := r.cache.Put(word, sentence, label); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache POS label for '%s': %v\n", word, err)
		}
	}
	return label, nil
}

func (r *Resolver) resolve(ctx context.Context, word, sentence string) (string, error) {
	wordTokens, err := r.tagger.Tag(ctx, word)
	if err != nil {
		return "", err
	}
	if len(wordTokens) == 0 {
		return "", fmt.Errorf("tagger returned no tokens for word '%s'", word)
	}

	if sentence == "" {
		return MapLabel(wordTokens[0].Tag), nil
	}

	tokens, err := r.tagger.Tag(ctx, sentence)
	if err != nil {
		return "", err
	}

	targetLemma := strings.ToLower(wordTokens[0].Lemma)
	for _, token := range tokens {
		if strings.ToLower(token.Lemma) == targetLemma || strings.EqualFold(token.Text, word) {
			return MapLabel(token.Tag), nil
		}
	}

	// Word not found in the sentence, fall back to the isolated tag
	return MapLabel(wordTokens[0].Tag), nil
}
