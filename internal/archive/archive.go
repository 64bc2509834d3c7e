package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveOutput moves an existing merged output file into an archive
// directory next to it, with a timestamp in the name, so a new run can
// overwrite the path without losing the previous result
func ArchiveOutput(outputFile string) error {
	// Check if the output file exists
	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		return fmt.Errorf("output file does not exist: %s", outputFile)
	}

	// Create archive directory next to the output file
	archiveDir := filepath.Join(filepath.Dir(outputFile), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(outputFile)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, timestamp, ext))
	}

	// Move the output file into the archive
	if err := os.Rename(outputFile, archivePath); err != nil {
		return fmt.Errorf("failed to archive output file: %w", err)
	}

	fmt.Printf("Previous output archived to: %s\n", archivePath)
	return nil
}
