package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/key"
	"github.com/dshills/keychord/internal/terminal"
)

// NewListenCommand creates the listen command.
func NewListenCommand() *cobra.Command {
	var mac, noMac bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Show each key chord as it is pressed",
		Long: `Open the terminal in raw mode and echo the canonical chord string
for every key press, along with the accumulated sequence. Useful for
finding out how a key combination should be spelled in a keymap.

The platform convention (Ctrl shown as Meta on macOS) is detected
automatically; --mac and --no-mac override it.

Press Escape twice to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mac && noMac {
				return fmt.Errorf("--mac and --no-mac are mutually exclusive")
			}
			conv := key.DetectConvention()
			if mac {
				conv = key.Convention{SwapCtrlMeta: true}
			}
			if noMac {
				conv = key.Convention{}
			}
			return runListen(conv)
		},
	}

	cmd.Flags().BoolVar(&mac, "mac", false, "Force the macOS Ctrl/Meta convention")
	cmd.Flags().BoolVar(&noMac, "no-mac", false, "Force the plain convention")

	return cmd
}

func runListen(conv key.Convention) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	seq := key.NewSequence()
	escapes := 0
	redraw(screen, "", seq)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc {
				escapes++
				if escapes >= 2 {
					return nil
				}
			} else {
				escapes = 0
			}

			chord := terminal.Chord(ev, conv)
			if chord.String() == "" {
				// Modifier-only press; nothing to show.
				continue
			}
			seq = seq.AppendChord(chord)
			redraw(screen, chord.String(), seq)

		case *tcell.EventResize:
			screen.Sync()
			redraw(screen, "", seq)
		}
	}
}

func redraw(screen tcell.Screen, last string, seq key.Sequence) {
	screen.Clear()
	style := tcell.StyleDefault
	bold := style.Bold(true)

	putText(screen, 0, 0, style, "keychord listen - press Escape twice to quit")
	putText(screen, 0, 2, style, "last chord:")
	putText(screen, 12, 2, bold, last)
	putText(screen, 0, 3, style, "sequence:")
	putText(screen, 12, 3, bold, seq.String())
	screen.Show()
}

func putText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
