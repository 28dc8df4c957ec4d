package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/termbridge-labs/termbridge/internal/branding"
	"github.com/termbridge-labs/termbridge/internal/config"
	"github.com/termbridge-labs/termbridge/internal/demo"
	"github.com/termbridge-labs/termbridge/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:           branding.CLIName(),
	Short:         branding.Description(),
	Long:          branding.DisplayName() + ` exposes its commands as structured, progressively-delivered results that an interactive terminal UI can render, expand, and page through.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute wires the registry, engine, and generated commands, then runs the
// root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()

	reg := registry.New()
	if err := demo.Register(reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"Output format: json, yaml, or human (default from config)")

	addInvocationCommands(rootCmd, reg)
	addSchemaCommand(rootCmd, reg)
	addConfigCommand(rootCmd)
	addVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// newLogger builds the diagnostic logger from the configured level. Logs go
// to stderr so they never interleave with the protocol stream on stdout.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  parseLevel(config.Get(config.KeyLogLevel)),
		Prefix: branding.CLIName(),
	})
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
