package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/key"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <spec>...",
		Short: "Print the canonical form of key binding specs",
		Long: `Parse each binding specification and print its canonical form.

Aliased modifier names, mixed separators, and uppercase spellings all
normalize to one spelling, so equivalent bindings compare equal as
strings.

Examples:
  keychord normalize '<Control-x>'
  keychord normalize '<mod1+y>' '<Windows-z>' gg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range args {
				seq, err := key.ParseSequence(spec)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), seq.String())
			}
			return nil
		},
	}

	return cmd
}
