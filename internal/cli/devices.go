package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/verance/rtac/internal/batch"
	"github.com/verance/rtac/internal/pointslist"
)

// DevicesOptions holds flags for the devices command.
type DevicesOptions struct {
	*RootOptions
}

// NewDevicesCommand creates the devices command.
func NewDevicesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DevicesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "devices <export-dir>",
		Short:         "List DNP server devices resolved from an export directory",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevices(opts, args[0], cmd)
		},
	}

	return cmd
}

func runDevices(opts *DevicesOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	result, err := batch.ResolveDir(dir, logger)
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodeNotFound, "resolving "+dir, err)
	}

	switch opts.Format {
	case "json":
		return formatter.JSON(result.Aggregate.Devices)
	case "csv":
		if err := pointslist.WriteDevicesCSV(formatter.Writer, result.Aggregate.Devices); err != nil {
			return formatter.Error(ExitFailure, ErrCodeWrite, "writing CSV", err)
		}
		return nil
	}

	for _, d := range result.Aggregate.Devices {
		formatter.Text("%s\tmap=%s\tsource=%s", d.DeviceName, d.MapName, d.SourceFile)
	}
	return nil
}
