package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"codeberg.org/snonux/owsmerge/internal/cli"
	"codeberg.org/snonux/owsmerge/internal/merge"
	"codeberg.org/snonux/owsmerge/internal/pos"
	"codeberg.org/snonux/owsmerge/internal/wordlist"
)

// tier pairs a source file name with its difficulty label
type tier struct {
	File       string
	Difficulty string
}

// Processor handles the main word list merging logic
type Processor struct {
	flags     *cli.Flags
	assembler *merge.Assembler
	cache     *pos.Cache
}

// NewProcessor creates a new word list processor
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	tagger := pos.NewOpenAITagger(cli.GetOpenAIKey(), flags.OpenAIModel)
	resolver := pos.NewResolver(tagger)

	var cache *pos.Cache
	if flags.POSCachePath != "" {
		var err error
		cache, err = pos.OpenCache(flags.POSCachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open POS cache: %w", err)
		}
		resolver = resolver.WithCache(cache)
	}

	assembler := merge.NewAssembler(resolver)
	assembler.SkipPOS = flags.SkipPOS

	return &Processor{
		flags:     flags,
		assembler: assembler,
		cache:     cache,
	}, nil
}

// Close releases resources held by the processor
func (p *Processor) Close() error {
	if p.cache != nil {
		return p.cache.Close()
	}
	return nil
}

// Run merges the three tier files in fixed order (easy, moderate, hard)
// into a single output file. The id counter is threaded across tiers so
// ids are globally unique and contiguous from 1.
func (p *Processor) Run(ctx context.Context) error {
	tiers := []tier{
		{File: p.flags.EasyFile, Difficulty: merge.DifficultyEasy},
		{File: p.flags.ModerateFile, Difficulty: merge.DifficultyMedium},
		{File: p.flags.HardFile, Difficulty: merge.DifficultyHard},
	}

	var merged []merge.Entry
	tierCounts := make([]int, len(tiers))
	currentID := 1

	for i, t := range tiers {
		path := filepath.Join(p.flags.InputDir, t.File)
		fmt.Printf("\nProcessing %s...\n", path)

		records, err := wordlist.LoadFile(path)
		if err != nil {
			return err
		}

		entries, nextID, err := p.assembler.BuildEntries(ctx, records, t.Difficulty, currentID)
		if err != nil {
			return err
		}

		merged = append(merged, entries...)
		tierCounts[i] = len(entries)
		currentID = nextID
	}

	if err := merge.WriteEntries(p.flags.OutputFile, merged); err != nil {
		return err
	}

	// Print summary
	fmt.Printf("\n=== Merge Summary ===\n")
	for i, t := range tiers {
		fmt.Printf("%s: %d words\n", t.Difficulty, tierCounts[i])
	}
	fmt.Printf("Total: %d words\n", len(merged))
	fmt.Printf("=====================\n")
	fmt.Printf("\nSuccessfully wrote %s\n", p.flags.OutputFile)

	return nil
}
