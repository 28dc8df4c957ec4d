package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/termbridge-labs/termbridge/internal/config"
	"github.com/termbridge-labs/termbridge/internal/engine"
	"github.com/termbridge-labs/termbridge/internal/progress"
	"github.com/termbridge-labs/termbridge/internal/protocol"
	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

// addInvocationCommands generates one cobra subcommand per registered
// descriptor. Flags are derived from the input schema; only flags the user
// actually set are forwarded, so schema defaults stay in one place.
func addInvocationCommands(root *cobra.Command, reg *registry.Registry) {
	for _, desc := range reg.All() {
		root.AddCommand(invocationCommand(reg, desc))
	}
}

func invocationCommand(reg *registry.Registry, desc *registry.Descriptor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   desc.Name,
		Short: desc.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := collectArgs(cmd, desc)
			if err != nil {
				return err
			}
			return runInvocation(cmd, reg, desc.Name, raw)
		},
	}
	if desc.Input != nil {
		for _, f := range desc.Input.Fields() {
			declareFlag(cmd, f)
		}
	}
	return cmd
}

// flagName maps a schema field name to its CLI spelling (per_page → --per-page).
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// declareFlag declares one typed flag for a schema field. Required fields are
// NOT marked required with cobra: cobra's check runs before RunE and would
// fail with a plain error on stderr, skipping the envelope path. Presence is
// enforced by schema validation instead, so a missing field reaches the
// caller as a ValidationError envelope like every other constraint violation.
func declareFlag(cmd *cobra.Command, f schema.Field) {
	name := flagName(f.Name)
	usage := f.Description
	if f.Required {
		if usage != "" {
			usage += " "
		}
		usage += "(required)"
	}
	switch f.Kind {
	case schema.Integer:
		cmd.Flags().Int(name, 0, usage)
	case schema.Number:
		cmd.Flags().Float64(name, 0, usage)
	case schema.Boolean:
		cmd.Flags().Bool(name, false, usage)
	case schema.Array:
		if f.Elem == schema.Number || f.Elem == schema.Integer {
			cmd.Flags().Float64Slice(name, nil, usage)
		} else {
			cmd.Flags().StringArray(name, nil, usage)
		}
	default:
		cmd.Flags().String(name, "", usage)
	}
}

// collectArgs reads the flags the user set into a raw argument mapping.
func collectArgs(cmd *cobra.Command, desc *registry.Descriptor) (map[string]any, error) {
	raw := map[string]any{}
	if desc.Input == nil {
		return raw, nil
	}
	for _, f := range desc.Input.Fields() {
		name := flagName(f.Name)
		if !cmd.Flags().Changed(name) {
			continue
		}
		var (
			v   any
			err error
		)
		switch f.Kind {
		case schema.Integer:
			v, err = cmd.Flags().GetInt(name)
		case schema.Number:
			v, err = cmd.Flags().GetFloat64(name)
		case schema.Boolean:
			v, err = cmd.Flags().GetBool(name)
		case schema.Array:
			if f.Elem == schema.Number || f.Elem == schema.Integer {
				v, err = cmd.Flags().GetFloat64Slice(name)
			} else {
				v, err = cmd.Flags().GetStringArray(name)
			}
		default:
			v, err = cmd.Flags().GetString(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading flag --%s: %w", name, err)
		}
		raw[f.Name] = v
	}
	return raw, nil
}

// resolveFormat picks the output format: flag, then TERMBRIDGE_JSON=1 (set
// by a consuming UI), then the configured default.
func resolveFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	if viper.GetBool("json") {
		return "json"
	}
	return config.Get(config.KeyFormat)
}

// runInvocation executes one command and prints the outcome in the resolved
// format. In json mode every outcome, including resolution and validation
// failures, is printed as a well-formed envelope on stdout with exit code 0;
// the envelope's ok flag carries the verdict.
func runInvocation(cmd *cobra.Command, reg *registry.Registry, name string, raw map[string]any) error {
	format := resolveFormat()
	out := cmd.OutOrStdout()

	opts := []engine.Option{engine.WithLogger(newLogger())}
	if format == "json" {
		opts = append(opts, engine.WithEmitter(progress.NewStream(out)))
	}
	eng := engine.New(reg, opts...)

	env, err := eng.Invoke(name, raw)
	if err != nil {
		if format == "json" {
			return printEnvelope(cmd, protocol.NewError(err), format)
		}
		return err
	}
	return printEnvelope(cmd, env, format)
}

func printEnvelope(cmd *cobra.Command, env *protocol.Envelope, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		line, err := env.MarshalLine()
		if err != nil {
			return err
		}
		_, err = out.Write(line)
		return err
	case "yaml":
		obj, err := env.AsMap()
		if err != nil {
			return err
		}
		raw, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("marshaling envelope to YAML: %w", err)
		}
		_, err = out.Write(raw)
		return err
	default:
		if !env.OK {
			if obj, ok := env.Data.(map[string]any); ok {
				if msg, ok := obj["message"].(string); ok {
					return fmt.Errorf("%s", msg)
				}
			}
			return fmt.Errorf("command failed")
		}
		fmt.Fprintln(out, env.Human)
		return nil
	}
}
