package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/promptsmith/guidectl/internal/config"
	"github.com/promptsmith/guidectl/internal/guideline"
	"github.com/promptsmith/guidectl/internal/source"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile    string
	sourceFlag string
	// Retry/HTTP flags (override config if set)
	flagHTTPTimeoutSec   int
	flagRetryMaxAttempts int
	flagRetryBaseDelayMs int
	flagRetryMaxDelayMs  int

	// Loaded configuration
	cfg *config.Global
)

var rootCmd = &cobra.Command{
	Use:   "guidectl",
	Short: "guidectl: install and maintain guideline files for AI coding assistants",
	Long:  `guidectl fetches a canonical guideline document and writes or appends it to a local instruction file (for example CLAUDE.md), keeping track of installed copies so they can be checked and refreshed.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.guidectl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "guideline source URI (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxAttempts, "retry-max", 0, "max fetch attempts on 429/5xx (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryBaseDelayMs, "retry-base-ms", 0, "base retry backoff in ms (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxDelayMs, "retry-max-ms", 0, "max retry backoff cap in ms (overrides config)")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
	if f.Changed("retry-max") && flagRetryMaxAttempts > 0 {
		cfg.RetryMaxAttempts = flagRetryMaxAttempts
	}
	if f.Changed("retry-base-ms") && flagRetryBaseDelayMs > 0 {
		cfg.RetryBaseDelayMs = flagRetryBaseDelayMs
	}
	if f.Changed("retry-max-ms") && flagRetryMaxDelayMs > 0 {
		cfg.RetryMaxDelayMs = flagRetryMaxDelayMs
	}
}

// effectiveSource returns the source URI honoring flag > config precedence.
func effectiveSource() string {
	if sourceFlag != "" {
		return sourceFlag
	}
	if cfg != nil && cfg.SourceURL != "" {
		return cfg.SourceURL
	}
	return source.BuiltinURI
}

// resolveTarget picks the target path from the positional arg or config.
func resolveTarget(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != nil && cfg.TargetFile != "" {
		return cfg.TargetFile
	}
	return config.DefaultTargetFile
}

func newSourceClient() *source.Client {
	var timeout, base, max time.Duration
	retryMax := 0
	if cfg != nil {
		timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second
		retryMax = cfg.RetryMaxAttempts
		base = time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond
		max = time.Duration(cfg.RetryMaxDelayMs) * time.Millisecond
	}
	return source.NewClient(timeout, retryMax, base, max)
}

// fetchDocument retrieves the guideline text from uri.
func fetchDocument(ctx context.Context, uri string) (*guideline.Document, error) {
	text, err := source.Fetch(ctx, newSourceClient(), uri)
	if err != nil {
		return nil, err
	}
	return guideline.NewDocument(uri, text), nil
}

func loadManifest() (*guideline.Manifest, error) {
	dir := ""
	if cfg != nil {
		dir = cfg.StateDir
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".guidectl")
	}
	return guideline.LoadManifest(dir)
}

// recordInstall updates the manifest after a successful write. Failures
// here are warnings, not errors: the target file is already correct.
func recordInstall(doc *guideline.Document, target string) {
	m, err := loadManifest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load manifest: %v\n", err)
		return
	}
	if _, err := m.Record(doc, target); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to record install: %v\n", err)
		return
	}
	if err := m.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to save manifest: %v\n", err)
	}
}
