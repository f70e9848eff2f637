// Package cmd provides CLI commands for the geocat crosswalk.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logLevels = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// setupLogger configures the default logger from LOG_LEVEL. Unknown or
// unset values mean info.
func setupLogger() {
	level, ok := logLevels[strings.ToUpper(os.Getenv("LOG_LEVEL"))]
	if !ok {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "geocat-crosswalk",
	Short: "Map geocat.ch CSW records to opendata.swiss datasets",
	Long: `geocat-crosswalk maps ISO19139/CHE metadata records fetched from the
geocat.ch catalogue service into the dataset schema of opendata.swiss.

It reads one CSW record (the bare metadata document, not the CSW envelope)
and writes the mapped dataset as JSON.

Examples:
  geocat-crosswalk map --organization swisstopo --source-id 93814e81 -i record.xml
  cat record.xml | geocat-crosswalk map --organization bafu --source-id 93814e81
  geocat-crosswalk vocabularies`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(vocabulariesCmd)
}
