package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/owsmerge/internal/archive"
	"codeberg.org/snonux/owsmerge/internal/cli"
	"codeberg.org/snonux/owsmerge/internal/models"
	"codeberg.org/snonux/owsmerge/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Overlay config file values onto flags not set on the command line
	flags.ApplyConfig()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Handle --archive flag
	if flags.Archive {
		if err := archive.ArchiveOutput(flags.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Run the merge pipeline
	if err := proc.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("\nDone! Merged word list saved to: %s\n", flags.OutputFile)
	return nil
}
