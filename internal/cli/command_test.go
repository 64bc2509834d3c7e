package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "owsmerge" {
		t.Errorf("Expected Use to be 'owsmerge', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "OWS Vocabulary List Merger") {
		t.Errorf("Expected Short description to contain 'OWS Vocabulary List Merger'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"input", true},
		{"output", true},
		{"easy-file", true},
		{"moderate-file", true},
		{"hard-file", true},
		{"skip-pos", true},
		{"list-models", true},
		{"archive", true},
		{"pos-cache", true},
		{"openai-model", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	outputFlag := cmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != "final_ows.json" {
		t.Errorf("Expected default output file to be final_ows.json, got %s", outputFlag.DefValue)
	}

	modelFlag := cmd.Flags().Lookup("openai-model")
	if modelFlag == nil {
		t.Fatal("openai-model flag not found")
	}
	if modelFlag.DefValue != "gpt-4o-mini" {
		t.Errorf("Expected default model to be gpt-4o-mini, got %s", modelFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `pos:
  model: gpt-4o
  openai_key: test-key
output:
  file: /test/output.json`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("OWSMERGE_TEST_VAR", "test-value")
			defer os.Unsetenv("OWSMERGE_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()
	viper.Reset()

	// Write a config file overriding several settings
	cfgPath := filepath.Join(t.TempDir(), "owsmerge.yaml")
	content := `input:
  directory: /cfg/lists
  easy_file: simple.json
output:
  file: /cfg/merged.json
pos:
  model: gpt-4o
  cache_path: /cfg/pos.db`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)
	InitConfig(cfgPath)

	// A flag set on the command line takes precedence over the config
	if err := cmd.Flags().Set("input", "/cli/lists"); err != nil {
		t.Fatalf("Failed to set input flag: %v", err)
	}

	flags.ApplyConfig()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"InputDir from command line", flags.InputDir, "/cli/lists"},
		{"EasyFile from config", flags.EasyFile, "simple.json"},
		{"ModerateFile keeps default", flags.ModerateFile, "moderate-ows.json"},
		{"OutputFile from config", flags.OutputFile, "/cfg/merged.json"},
		{"OpenAIModel from config", flags.OpenAIModel, "gpt-4o"},
		{"POSCachePath from config", flags.POSCachePath, "/cfg/pos.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestApplyConfig_NoConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()
	viper.Reset()

	// Without a config file or bound flags every default survives
	flags := NewFlags()
	flags.ApplyConfig()

	want := NewFlags()
	if *flags != *want {
		t.Errorf("ApplyConfig changed defaults: got %+v, want %+v", flags, want)
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper
			viper.Reset()

			// Set up environment
			if tt.envKey != "" {
				os.Setenv("OPENAI_API_KEY", tt.envKey)
				defer os.Unsetenv("OPENAI_API_KEY")
			} else {
				os.Unsetenv("OPENAI_API_KEY")
			}

			// Set up config
			if tt.configKey != "" {
				viper.Set("pos.openai_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output", "/test/output.json")
	cmd.Flags().Set("input", "/test/lists")
	cmd.Flags().Set("openai-model", "gpt-4o")

	bindFlagsToViper(cmd.Flags())

	// Test that values are bound
	if viper.GetString("output.file") != "/test/output.json" {
		t.Errorf("Expected output.file to be /test/output.json, got %s", viper.GetString("output.file"))
	}

	if viper.GetString("input.directory") != "/test/lists" {
		t.Errorf("Expected input.directory to be /test/lists, got %s", viper.GetString("input.directory"))
	}

	if viper.GetString("pos.model") != "gpt-4o" {
		t.Errorf("Expected pos.model to be gpt-4o, got %s", viper.GetString("pos.model"))
	}
}
