// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines verbose/quiet/format persistent flags shared by all commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███╗   ███╗ █████╗ ██╗██╗    ██╗   ██╗███████╗ ██████╗
████╗ ████║██╔══██╗██║██║    ██║   ██║██╔════╝██╔════╝
██╔████╔██║███████║██║██║    ██║   ██║█████╗  ██║
██║╚██╔╝██║██╔══██║██║██║    ╚██╗ ██╔╝██╔══╝  ██║
██║ ╚═╝ ██║██║  ██║██║███████╗╚████╔╝ ███████╗╚██████╗
╚═╝     ╚═╝╚═╝  ╚═╝╚═╝╚══════╝ ╚═══╝  ╚══════╝ ╚═════╝`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailvec",
		Short: "Local semantic search over your email",
		Long: banner + `

Mailvec keeps a local store of email embeddings and serves
similarity search over it. Embeddings come from OpenAI when an
API key is configured, with a deterministic offline fallback.

All data stays on this machine in a SQLite database.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewClearCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
