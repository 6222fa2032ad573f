package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const (
	// Version is the current version of keychord.
	Version = "0.1.0"
)

// NewRootCommand creates the root cobra command for keychord.
func NewRootCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "keychord",
		Short: "keychord - inspect and normalize key bindings for terminal apps",
		Long: `keychord parses, normalizes, and validates key binding specifications.

A binding is a sequence of chords written as bare characters or
bracketed combinations: "gg", "<Ctrl-s>", "<Ctrl-x><Ctrl-s>".
Modifier aliases (control, mod1, windows, ...) and both "-" and "+"
separators are accepted and normalized to one canonical spelling.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(NewNormalizeCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewFmtCommand())
	cmd.AddCommand(NewListenCommand())

	return cmd
}
