package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/shabdsetu/internal/cli"
	"codeberg.org/snonux/shabdsetu/internal/dictionary"
	"codeberg.org/snonux/shabdsetu/internal/health"
	"codeberg.org/snonux/shabdsetu/internal/history"
	"codeberg.org/snonux/shabdsetu/internal/provider"
	"codeberg.org/snonux/shabdsetu/internal/server"
	"codeberg.org/snonux/shabdsetu/internal/translator"
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
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Use config file values if not overridden by flags
	cli.ApplyConfig(cmd, flags)

	svc, err := buildService(flags, len(args) == 0)
	if err != nil {
		return err
	}

	// A positional argument means one-shot translation
	if len(args) > 0 {
		result, err := svc.Translate(cmd.Context(), args[0], flags.SourceLanguage, flags.TargetLanguage)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", result.TranslatedText)
		fmt.Fprintf(os.Stderr, "(%s -> %s, %s)\n",
			result.SourceLanguage, result.TargetLanguage, result.Method)
		return nil
	}

	// No input provided - run the HTTP server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tutor := health.New(ctx, cli.GetGeminiKey(), flags.GeminiModel)
	srv := server.New(svc, tutor, &server.Config{Addr: flags.ListenAddr})
	return srv.ListenAndServe(ctx)
}

// buildService assembles the dictionary, provider chain and optional history
// store into a translation service.
func buildService(flags *cli.Flags, withHistory bool) (*translator.Service, error) {
	dict := dictionary.New()
	if flags.DictionaryFile != "" {
		added, err := dict.LoadFile(flags.DictionaryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary file: %w", err)
		}
		log.Printf("loaded %d extra dictionary entries from %s", added, flags.DictionaryFile)
	}

	chain := provider.DefaultChain(cli.GetOpenAIKey(), flags.OpenAIModel)

	config := &translator.Config{Budget: flags.ProviderBudget}
	if withHistory && !flags.NoHistory {
		if err := os.MkdirAll(filepath.Dir(flags.HistoryFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		hist, err := history.Open(flags.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		config.History = hist
		log.Printf("recording translation history in %s", flags.HistoryFile)
	}

	return translator.New(dict, chain, config), nil
}
