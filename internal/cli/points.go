package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/verance/rtac/internal/batch"
	"github.com/verance/rtac/internal/pointslist"
)

// PointsOptions holds flags for the points command.
type PointsOptions struct {
	*RootOptions
	Profile string // optional CUE profile path
	Output  string // output file path ("" = stdout)
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PointsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "points <export-dir | file.xml ...>",
		Short: "Generate per-device points lists from RTAC exports",
		Long: `Resolve RTAC export files in two passes, then join tag mappings
against the extracted points to produce one points list per DNP
server device.

A single directory argument is walked recursively for .xml files;
otherwise the arguments are treated as individual export files.

An optional CUE profile extends the data-type table and the export
column layout.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "CUE profile file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runPoints(opts *PointsOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	profile := pointslist.DefaultProfile()
	if opts.Profile != "" {
		var err error
		profile, err = pointslist.LoadProfile(opts.Profile)
		if err != nil {
			return formatter.Error(ExitCommandError, ErrCodeProfile, "loading profile", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	var result *batch.Result
	var err error
	if len(args) == 1 {
		info, statErr := os.Stat(args[0])
		switch {
		case statErr != nil:
			return formatter.Error(ExitCommandError, ErrCodeNotFound, "resolving "+args[0], statErr)
		case info.IsDir():
			result, err = batch.ResolveDir(args[0], logger)
		default:
			result, err = batch.ResolveFiles(args, logger)
		}
	} else {
		result, err = batch.ResolveFiles(args, logger)
	}
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodeNotFound, "resolving exports", err)
	}

	formatter.VerboseLog("resolved %d file(s), %d skipped", result.Files, result.Skipped)

	byDevice := pointslist.Generate(&result.Aggregate, profile)

	// File output goes through a buffer so every write and close
	// failure surfaces as an error instead of a truncated file.
	if opts.Output != "" {
		var buf bytes.Buffer
		if err := writePoints(formatter, &buf, byDevice, opts.Format); err != nil {
			return err
		}
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
			return formatter.Error(ExitFailure, ErrCodeWrite, "writing "+opts.Output, err)
		}
		return nil
	}

	return writePoints(formatter, formatter.Writer, byDevice, opts.Format)
}

func writePoints(formatter *OutputFormatter, out io.Writer, byDevice pointslist.ByDevice, format string) error {
	deviceNames := make([]string, 0, len(byDevice))
	for name := range byDevice {
		deviceNames = append(deviceNames, name)
	}
	sort.Strings(deviceNames)

	switch format {
	case "json":
		enc := &OutputFormatter{Format: "json", Writer: out}
		return enc.JSON(byDevice)
	case "csv":
		if err := pointslist.WriteRowsCSV(out, byDevice, deviceNames); err != nil {
			return formatter.Error(ExitFailure, ErrCodeWrite, "writing CSV", err)
		}
		return nil
	}

	for _, name := range deviceNames {
		dev := byDevice[name]
		fmt.Fprintf(out, "%s (map %s): %d row(s), %d duplicate(s)\n",
			name, dev.MapName, len(dev.Rows), dev.Duplicates)
		for _, r := range dev.Rows {
			fmt.Fprintf(out, "  [%s] %s <- %s (%s, index %s)\n",
				r.PointType, r.Destination, r.Source, r.DataType, r.Index)
		}
	}
	return nil
}
