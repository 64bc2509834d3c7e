package merge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"codeberg.org/snonux/owsmerge/internal/note"
	"codeberg.org/snonux/owsmerge/internal/pos"
	"codeberg.org/snonux/owsmerge/internal/wordlist"
)

// Difficulty labels used in the merged output
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// statusActive is the lifecycle status stamped on every merged entry
const statusActive = "Active"

// SourceInfo identifies the material the word lists were extracted from
type SourceInfo struct {
	PDFName  string `json:"pdfName"`
	ExamYear int    `json:"examYear"`
}

// DefaultSourceInfo is the source block stamped on every entry of a run
var DefaultSourceInfo = SourceInfo{PDFName: "Blackbook", ExamYear: 2025}

// Properties holds the difficulty and status block of a merged entry
type Properties struct {
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
}

// Content embeds the enriched word record in the output envelope
type Content struct {
	ID             int      `json:"id"`
	POS            string   `json:"pos"`
	Word           string   `json:"word"`
	MeaningEn      string   `json:"meaning_en"`
	MeaningHi      string   `json:"meaning_hi"`
	UsageSentences []string `json:"usage_sentences"`
	Note           string   `json:"note"`
	Origin         string   `json:"origin"`
}

// Entry is a single element of the merged output array
type Entry struct {
	ID         string     `json:"id"`
	SourceInfo SourceInfo `json:"sourceInfo"`
	Properties Properties `json:"properties"`
	Content    Content    `json:"content"`
}

// Assembler turns flattened word records into merged output entries
type Assembler struct {
	resolver *pos.Resolver

	// SkipPOS leaves the pos field empty instead of querying the
	// tagging API, for offline runs
	SkipPOS bool
}

// NewAssembler creates an assembler using the given POS resolver
func NewAssembler(resolver *pos.Resolver) *Assembler {
	return &Assembler{resolver: resolver}
}

// BuildEntries enriches records in order, assigning sequential ids
// starting at startID, and returns the entries plus the next unused id.
// The id counter is threaded across files so ids stay globally unique.
func (a *Assembler) BuildEntries(ctx context.Context, records []wordlist.Record, difficulty string, startID int) ([]Entry, int, error) {
	entries := make([]Entry, 0, len(records))
	currentID := startID

	for i, record := range records {
		fmt.Printf("  Processing %d/%d: %s\n", i+1, len(records), record.Word)

		var label string
		if !a.SkipPOS {
			var err error
			label, err = a.resolver.Resolve(ctx, record.Word, record.FirstSentence())
			if err != nil {
				return nil, startID, fmt.Errorf("failed to resolve POS for '%s': %w", record.Word, err)
			}
		}

		entries = append(entries, buildEntry(record, difficulty, currentID, label))
		currentID++
	}

	return entries, currentID, nil
}

func buildEntry(record wordlist.Record, difficulty string, id int, label string) Entry {
	sentences := record.UsageSentences
	if sentences == nil {
		sentences = []string{} // keep an empty list, not null, in the output
	}

	return Entry{
		ID:         strconv.Itoa(id),
		SourceInfo: DefaultSourceInfo,
		Properties: Properties{
			Difficulty: difficulty,
			Status:     statusActive,
		},
		Content: Content{
			ID:             id,
			POS:            label,
			Word:           record.Word,
			MeaningEn:      record.MeaningEn,
			MeaningHi:      record.MeaningHi,
			UsageSentences: sentences,
			Note:           note.Generate(record.Word, record.MeaningEn, record.Origin),
			Origin:         record.Origin,
		},
	}
}

// WriteEntries writes the full merged array as pretty-printed UTF-8
// JSON. HTML escaping is off so Devanagari meanings stay literal.
func WriteEntries(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{} // the output is always an array, never null
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode merged output: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
