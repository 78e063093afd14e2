package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/shabdsetu/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shabdsetu [text]",
		Short: "Bidirectional English-Marathi Translation Service",
		Long: `shabdsetu translates between English and Marathi in both directions.

It resolves translations through a local dictionary first, then a chain
of external translation providers, and caches every answer in memory.

Examples:
  shabdsetu                        # Run the HTTP API server (default)
  shabdsetu "hello"                # Translate a phrase via CLI
  shabdsetu "मला मदत हवी आहे"      # Marathi input is auto-detected
  shabdsetu --listen :9000         # Serve on a different address`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default history database lives next to the rest of the state
	home, _ := os.UserHomeDir()
	defaultHistoryFile := filepath.Join(home, ".local", "state", "shabdsetu", "history.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.shabdsetu.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.ListenAddr, "listen", "l", flags.ListenAddr, "HTTP listen address")
	cmd.Flags().StringVar(&flags.DictionaryFile, "dictionary", "", "Extra dictionary file (english = marathi, one per line)")
	cmd.Flags().StringVar(&flags.HistoryFile, "history", defaultHistoryFile, "SQLite translation history database")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Disable translation history recording")
	cmd.Flags().StringVarP(&flags.SourceLanguage, "source", "s", flags.SourceLanguage, "Source language (en, mr or auto)")
	cmd.Flags().StringVarP(&flags.TargetLanguage, "target", "t", flags.TargetLanguage, "Target language (en, mr or auto)")
	cmd.Flags().DurationVar(&flags.ProviderBudget, "budget", flags.ProviderBudget, "Time budget for the external provider chain per request")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI model for the translation provider")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for health query answers")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("server.listen", cmd.Flags().Lookup("listen"))
	viper.BindPFlag("translate.dictionary", cmd.Flags().Lookup("dictionary"))
	viper.BindPFlag("translate.budget", cmd.Flags().Lookup("budget"))
	viper.BindPFlag("history.path", cmd.Flags().Lookup("history"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
}

// ApplyConfig overlays config file and environment values onto flags that
// were not set on the command line. Explicit flags always win.
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	if !cmd.Flags().Changed("listen") && viper.IsSet("server.listen") {
		flags.ListenAddr = viper.GetString("server.listen")
	}
	if !cmd.Flags().Changed("dictionary") && viper.IsSet("translate.dictionary") {
		flags.DictionaryFile = viper.GetString("translate.dictionary")
	}
	if !cmd.Flags().Changed("budget") && viper.IsSet("translate.budget") {
		flags.ProviderBudget = viper.GetDuration("translate.budget")
	}
	if !cmd.Flags().Changed("history") && viper.IsSet("history.path") {
		flags.HistoryFile = viper.GetString("history.path")
	}
	if !cmd.Flags().Changed("openai-model") && viper.IsSet("openai.model") {
		flags.OpenAIModel = viper.GetString("openai.model")
	}
	if !cmd.Flags().Changed("gemini-model") && viper.IsSet("gemini.model") {
		flags.GeminiModel = viper.GetString("gemini.model")
	}
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

		// Search config in home directory with name ".shabdsetu" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shabdsetu")
	}

	// Environment variables
	viper.SetEnvPrefix("SHABDSETU")
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
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}
