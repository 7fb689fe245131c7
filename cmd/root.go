// Package cmd provides CLI commands for marc2eprints.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc2eprints/config"
)

var configFile string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// loadEnv reads a .env file from the working directory if one exists.
// Variables already set in the environment take precedence.
func loadEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}
}

// loadConfig builds the run configuration from defaults, the config file
// and the environment. Flags are applied by each command afterwards.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:   "marc2eprints",
	Short: "Convert MARCXML records to EPrints XML",
	Long: `marc2eprints converts bibliographic records in MARCXML (MARC21 slim)
into an EPrints XML document for repository ingest.

Title (245), main author (100), publication (264) and keyword subjects (653)
are mapped; other fields are ignored.

Examples:
  marc2eprints convert
  marc2eprints convert tesis.xml output_eprints.xml
  marc2eprints convert -i catalogo.xml -o eprints.json --to eprints-json
  marc2eprints validate tesis.xml -v
  marc2eprints fields`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	loadEnv()
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config YAML file (default: $"+config.EnvConfig+" or built-in defaults)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(formatsCmd)
}
