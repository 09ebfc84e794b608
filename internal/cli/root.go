package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "csv"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "csv"}

// NewRootCommand creates the root command for the rtac CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rtac",
		Short: "rtac - RTAC configuration export tooling",
		Long:  "Parse RTAC configuration exports and generate per-device points lists.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|csv)")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewPointsCommand(opts))
	cmd.AddCommand(NewDevicesCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
