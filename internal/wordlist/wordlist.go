package wordlist

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Record represents a single word entry from a source OWS file
type Record struct {
	Word           string   `json:"word"`
	MeaningEn      string   `json:"meaning_en"`
	MeaningHi      string   `json:"meaning_hi,omitempty"`
	UsageSentences []string `json:"usage_sentences,omitempty"`
	Origin         string   `json:"origin,omitempty"`
}

// FirstSentence returns the first usage sentence, or "" if there is none
func (r Record) FirstSentence() string {
	if len(r.UsageSentences) > 0 {
		return r.UsageSentences[0]
	}
	return ""
}

// LoadFile reads a source OWS file and returns its records as a flat,
// ordered sequence. Source files are either a mapping of page-number
// strings to record lists, or already a flat record list.
func LoadFile(path string) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list file: %w", err)
	}

	records, err := Flatten(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// Flatten parses raw JSON content into a flat record sequence.
//
// A mapping is flattened page by page in key order; pages hold record
// lists and any page holding something else is skipped. A top-level
// list is used as-is. Any other JSON value yields an empty sequence.
func Flatten(content []byte) ([]Record, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	// Flat list form
	var flat []Record
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	// Page-map form
	var pages map[string]json.RawMessage
	if err := json.Unmarshal(raw, &pages); err != nil {
		// Neither a list nor a mapping (e.g. a bare string or number)
		return nil, nil
	}

	var records []Record
	for _, key := range sortedPageKeys(pages) {
		var page []Record
		if err := json.Unmarshal(pages[key], &page); err != nil {
			continue // page value is not a record list
		}
		records = append(records, page...)
	}
	return records, nil
}

// sortedPageKeys orders page keys numerically ("1", "2", ... "10") with a
// lexicographic fallback for keys that are not plain integers
func sortedPageKeys(pages map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(pages))
	for key := range pages {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		if aErr == nil || bErr == nil {
			return aErr == nil // numeric pages sort before anything else
		}
		return keys[i] < keys[j]
	})

	return keys
}
