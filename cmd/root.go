// Package cmd provides CLI commands for authorlist.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

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

var rootCmd = &cobra.Command{
	Use:   "authorlist",
	Short: "Generate INSPIRE author-list XML from a spreadsheet",
	Long: `Authorlist converts a spreadsheet of authors and affiliations into an
INSPIRE collaborationauthorlist XML document.

Each row lists given name, abbreviated given name, family name, an unused
column, an ORCID, up to three affiliations and an optional sort key.
Affiliations are deduplicated and numbered a1, a2, ... and every author
references them by identifier.

Examples:
  authorlist generate authors.ods --toml paper.toml
  authorlist generate authors.xlsx --profile collaboration --schema authors.xsd
  authorlist validate authors.xml --schema authors.xsd`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// LOG_LEVEL may come from a .env file in the working directory
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(formatsCmd)
}
