package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/owsmerge/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "owsmerge",
		Short: "OWS Vocabulary List Merger",
		Long: `owsmerge merges One Word Substitution (OWS) vocabulary lists into a
single enriched JSON file.

It reads the easy, moderate and hard word lists, determines each word's
part of speech from its example sentence via the OpenAI API, generates a
short etymology/usage note and assigns sequential ids across all tiers.

Examples:
  owsmerge                          # Merge lists from the current directory
  owsmerge -i ./lists -o merged.json
  owsmerge --skip-pos               # Offline run without POS tagging`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.owsmerge.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputDir, "input", "i", flags.InputDir, "Directory containing the source word list files")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", flags.OutputFile, "Merged output file")
	cmd.Flags().StringVar(&flags.EasyFile, "easy-file", flags.EasyFile, "Easy tier source file name")
	cmd.Flags().StringVar(&flags.ModerateFile, "moderate-file", flags.ModerateFile, "Moderate tier source file name")
	cmd.Flags().StringVar(&flags.HardFile, "hard-file", flags.HardFile, "Hard tier source file name")
	cmd.Flags().BoolVar(&flags.SkipPOS, "skip-pos", false, "Skip POS tagging (pos fields are left empty)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive an existing output file before merging")
	cmd.Flags().StringVar(&flags.POSCachePath, "pos-cache", "", "SQLite file caching resolved POS labels across runs")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for POS tagging")

	// Bind flags to viper
	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("input.directory", fs.Lookup("input"))
	viper.BindPFlag("input.easy_file", fs.Lookup("easy-file"))
	viper.BindPFlag("input.moderate_file", fs.Lookup("moderate-file"))
	viper.BindPFlag("input.hard_file", fs.Lookup("hard-file"))
	viper.BindPFlag("output.file", fs.Lookup("output"))
	viper.BindPFlag("pos.model", fs.Lookup("openai-model"))
	viper.BindPFlag("pos.cache_path", fs.Lookup("pos-cache"))
}

// ApplyConfig overlays config file values onto the flags. Each key is
// bound to its flag, so viper resolves to the command-line value when
// the flag was set on the command line and to the config file value
// otherwise, with the flag default as the last fallback.
func (f *Flags) ApplyConfig() {
	f.InputDir = configString("input.directory", f.InputDir)
	f.EasyFile = configString("input.easy_file", f.EasyFile)
	f.ModerateFile = configString("input.moderate_file", f.ModerateFile)
	f.HardFile = configString("input.hard_file", f.HardFile)
	f.OutputFile = configString("output.file", f.OutputFile)
	f.OpenAIModel = configString("pos.model", f.OpenAIModel)
	f.POSCachePath = configString("pos.cache_path", f.POSCachePath)
}

// configString reads a bound key from viper, keeping the fallback when
// nothing resolves (flags not bound, as in unit tests)
func configString(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".owsmerge" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".owsmerge")
	}

	// Environment variables
	viper.SetEnvPrefix("OWSMERGE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("pos.openai_key")
}
