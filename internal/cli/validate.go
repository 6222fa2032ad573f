package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/keymap"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <keymap-file>",
		Short: "Validate a keymap file",
		Long: `Validate a YAML or JSON keymap file.

This checks:
- File structure and syntax
- Every binding has keys and an action
- Every key sequence parses

Examples:
  keychord validate keys.yaml
  keychord validate keys.json --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := keymap.LoadFile(args[0])
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Keymap failed to load")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Keymap parsed successfully")

			parsed, err := km.Parse()
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Binding sequences failed to parse")
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %d bindings valid\n", len(parsed.ParsedBindings))

			if verbose {
				for _, pb := range parsed.ParsedBindings {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s\n", pb.Sequence.String(), pb.Action)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show each binding")

	return cmd
}
