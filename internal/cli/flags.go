package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputDir   string
	OutputFile string
	SkipPOS    bool
	ListModels bool
	Archive    bool

	// Per-tier source file names
	EasyFile     string
	ModerateFile string
	HardFile     string

	// OpenAI flags
	OpenAIModel string

	// POS cache
	POSCachePath string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		InputDir:     ".",
		OutputFile:   "final_ows.json",
		EasyFile:     "easy-ows.json",
		ModerateFile: "moderate-ows.json",
		HardFile:     "hard-ows.json",
		OpenAIModel:  "gpt-4o-mini",
	}
}
