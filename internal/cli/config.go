package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termbridge-labs/termbridge/internal/branding"
	"github.com/termbridge-labs/termbridge/internal/config"
)

var configKeys = []string{config.KeyFormat, config.KeyLogLevel, config.KeyAppBin}

func validConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

// addConfigCommand registers config get/set over the documented keys. Values
// land in ~/.termbridge/config.yaml; the TERMBRIDGE_* environment still wins
// at read time.
func addConfigCommand(root *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long:  `Read and write ` + branding.DisplayName() + ` configuration stored at ` + config.FilePath() + `.`,
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !validConfigKey(key) {
				return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !validConfigKey(key) {
				return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}

	configCmd.AddCommand(getCmd)
	configCmd.AddCommand(setCmd)
	root.AddCommand(configCmd)
}
