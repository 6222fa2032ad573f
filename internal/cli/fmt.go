package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keychord/internal/key"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <keymap.json>",
		Short: "Rewrite a JSON keymap's key specs to canonical form",
		Long: `Rewrite every binding's key specification in a JSON keymap to its
canonical form, leaving all other fields untouched.

By default the formatted document is printed to stdout; pass --write
to update the file in place. Object-form binding maps are supported,
but reformatting a map key may reorder its members.

Examples:
  keychord fmt keys.json
  keychord fmt keys.json --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading keymap file: %w", err)
			}

			out, err := formatKeymapJSON(data)
			if err != nil {
				return err
			}

			if write {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return fmt.Errorf("writing keymap file: %w", err)
				}
				return nil
			}

			_, _ = cmd.OutOrStdout().Write(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")

	return cmd
}

// formatKeymapJSON canonicalizes every key spec in a JSON keymap
// document without disturbing the rest of the document.
func formatKeymapJSON(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	bindings := gjson.GetBytes(data, "bindings")
	out := data
	var err error

	switch {
	case bindings.IsArray():
		for i, b := range bindings.Array() {
			spec := b.Get("keys").String()
			canon, cErr := canonicalize(spec)
			if cErr != nil {
				return nil, fmt.Errorf("binding %d: %w", i, cErr)
			}
			if canon == spec {
				continue
			}
			out, err = sjson.SetBytes(out, fmt.Sprintf("bindings.%d.keys", i), canon)
			if err != nil {
				return nil, err
			}
		}
	case bindings.IsObject():
		var walkErr error
		bindings.ForEach(func(spec, action gjson.Result) bool {
			canon, cErr := canonicalize(spec.String())
			if cErr != nil {
				walkErr = cErr
				return false
			}
			if canon == spec.String() {
				return true
			}
			out, err = sjson.DeleteBytes(out, "bindings."+escapePath(spec.String()))
			if err == nil {
				out, err = sjson.SetBytes(out, "bindings."+escapePath(canon), action.Value())
			}
			if err != nil {
				walkErr = err
				return false
			}
			return true
		})
		if walkErr != nil {
			return nil, walkErr
		}
	case bindings.Exists():
		return nil, fmt.Errorf("bindings must be an array or object")
	}

	return out, nil
}

func canonicalize(spec string) (string, error) {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// escapePath escapes a key spec for use as a gjson/sjson path
// component. Key specs can contain path metacharacters like "." or
// "?".
func escapePath(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
