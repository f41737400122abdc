// Package cli implements the studentctl command-line interface: one cobra
// subcommand per table operation. Every subcommand opens its own database
// connection, runs exactly one statement against the students table, prints
// the outcome and releases the connection before exiting.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
}

const version = "0.1.0"

// NewRootCommand creates the root command for the studentctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "studentctl",
		Version: version,
		Short:   "Manage rows of a PostgreSQL students table",
		Long: `studentctl manages rows of a PostgreSQL students table.

Connection parameters come from the PGHOST, PGPORT, PGUSER, PGPASSWORD and
PGDATABASE environment variables. An optional YAML config file can supply
the same settings plus logging and pool options; the environment wins on
conflict.

Example:
  studentctl add --first Ada --last Lovelace --email ada@example.com --date 1833-06-05`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(NewListAllCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewUpdateEmailCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}
