// Package cli implements the keychord command-line interface.
//
// Each subcommand is built by a New*Command constructor and attached
// to the root command, so tests can drive any command through
// cmd.SetArgs and cmd.SetOut without touching the process state.
package cli
