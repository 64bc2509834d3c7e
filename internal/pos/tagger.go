package pos

import (
	"context"
	"strings"
)

// Token is a single tagged token as returned by the tagging capability
type Token struct {
	Text  string `json:"text"`  // surface form as it appears in the text
	Lemma string `json:"lemma"` // dictionary base form
	Tag   string `json:"tag"`   // coarse category (NOUN, VERB, ADJ, ...)
}

// Tagger defines the interface for part-of-speech tagging providers
type Tagger interface {
	// Tag analyzes the given text and returns one token per word, in order
	Tag(ctx context.Context, text string) ([]Token, error)

	// Name returns the name of the tagging provider
	Name() string
}

// labelNames maps coarse tags to the reader-facing labels used in the
// merged output. Tags outside the table pass through title-cased.
var labelNames = map[string]string{
	"NOUN":  "Noun",
	"VERB":  "Verb",
	"ADJ":   "Adjective",
	"ADV":   "Adverb",
	"PROPN": "Proper Noun",
	"PRON":  "Pronoun",
}

// MapLabel converts a coarse tag into its display label
func MapLabel(tag string) string {
	if name, ok := labelNames[strings.ToUpper(tag)]; ok {
		return name
	}
	return titleCase(tag)
}

// titleCase upper-cases the first letter and lower-cases the rest,
// which is enough for single-token tags like "AUX" or "SCONJ"
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
