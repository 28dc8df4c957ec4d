package cli

import (
	"github.com/spf13/cobra"

	"github.com/termbridge-labs/termbridge/internal/branding"
	"github.com/termbridge-labs/termbridge/internal/config"
	"github.com/termbridge-labs/termbridge/internal/protocol"
	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/render"
)

// addSchemaCommand registers the catalog command a consuming UI calls first:
// it lists every command with its field constraints, the protocol version,
// and the binary name substituted for the derived-command placeholder. A host
// that passes its own protocol version via --host-version gets a compatibility
// verdict in the payload instead of comparing versions itself.
func addSchemaCommand(root *cobra.Command, reg *registry.Registry) {
	var hostVersion string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Describe all commands and their schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			commands := make([]map[string]any, 0)
			for _, desc := range reg.All() {
				entry := map[string]any{
					"name":        desc.Name,
					"description": desc.Description,
				}
				if desc.Input != nil {
					entry["input"] = desc.Input.Describe()
				}
				if desc.Output != nil {
					entry["output"] = desc.Output.Describe()
				}
				commands = append(commands, entry)
			}
			payload := map[string]any{
				"app":              branding.CLIName(),
				"app_bin":          config.Get(config.KeyAppBin),
				"placeholder":      branding.Placeholder(),
				"protocol_version": protocol.Version,
				"commands":         commands,
			}
			if hostVersion != "" {
				ok, err := protocol.Compatible(hostVersion)
				if err != nil {
					return err
				}
				payload["host_version"] = hostVersion
				payload["compatible"] = ok
			}
			env := protocol.NewResult(payload, render.Default(payload))
			return printEnvelope(cmd, env, resolveFormat())
		},
	}
	cmd.Flags().StringVar(&hostVersion, "host-version", "",
		"Host protocol version to check compatibility against")
	root.AddCommand(cmd)
}
