// Package commands defines the statelab CLI.
//
// Commands
//
//   - (none)   Run the interactive TUI
//   - users    Print the user directory from the demo API
//   - post     Validate and create a post on the demo API
//   - bank     Replay a deposit/withdraw/reset script through the teller
//
// # Implementation
//
// The root command loads configuration before any subcommand runs. The TUI
// logs to the configured file because it owns the terminal; the headless
// subcommands log to stderr.
package commands
