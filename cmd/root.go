package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/dropdown/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	version    string
	baseDir    string
	configPath string
	logFile    string
	logWriter  io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Accessible dropdown select for the terminal",
	Long: `dropdown - A single-select dropdown following the WAI-ARIA combo-box pattern.

Pick an option interactively, or print the accessible markup and report for a
given option list.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeLogging()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for config lookup
func getBaseDir() string {
	return baseDir
}

// setupLogging routes slog away from the terminal, which the picker owns.
func setupLogging(cmd *cobra.Command, args []string) error {
	var w io.Writer = io.Discard
	level := slog.LevelInfo
	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		}
		logWriter = lj
		w = lj
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func closeLogging() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}
