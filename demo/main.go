// Package main is a small command line front end for the timeseries loader.
//
//	tsload inspect data.csv
//	tsload inspect --plot data.png --rewrite clean.csv data.csv
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tsload/preview"
	"github.com/sartorproj/tsload/timeseries"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// inspectFlags holds the flags of the inspect command.
type inspectFlags struct {
	delimiter string
	comment   string
	logLevel  string
	plot      string
	rewrite   string
	timeLabel string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "tsload",
		Short:         "Load and inspect tabular time-series files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newInspectCmd())
	return root
}

func newInspectCmd() *cobra.Command {
	var f inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Load a file and print a summary of its channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.delimiter, "delimiter", ",", "field delimiter")
	flags.StringVar(&f.comment, "comment", "", "skip lines starting with this character")
	flags.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&f.plot, "plot", "", "write a preview plot to this file (.png, .svg, .pdf)")
	flags.StringVar(&f.rewrite, "rewrite", "", "write the loaded table back to this CSV file")
	flags.StringVar(&f.timeLabel, "time-label", "time", "header label of the time column when rewriting")
	return cmd
}

func runInspect(cmd *cobra.Command, path string, f *inspectFlags) error {
	opts, err := f.options(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log := opts.Logger

	l := timeseries.LoadWithOptions(path, opts)
	if !l.Loaded() {
		return l.Err()
	}

	printSummary(cmd.OutOrStdout(), l)

	if f.plot != "" {
		popts := preview.DefaultOptions()
		popts.Title = path
		if err := preview.Save(l.Table(), f.plot, popts); err != nil {
			log.Error("could not write plot", "path", f.plot, "err", err)
			return err
		}
		log.Info("wrote plot", "path", f.plot)
	}

	if f.rewrite != "" {
		if err := timeseries.SaveCSV(l.Table(), f.rewrite, f.timeLabel); err != nil {
			log.Error("could not rewrite table", "path", f.rewrite, "err", err)
			return err
		}
		log.Info("rewrote table", "path", f.rewrite, "rows", len(l.TimeVector()))
	}
	return nil
}

func (f *inspectFlags) options(stderr io.Writer) (*timeseries.Options, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", f.logLevel)
	}

	opts := timeseries.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	d, err := singleRune("delimiter", f.delimiter)
	if err != nil {
		return nil, err
	}
	if d != 0 {
		opts.Delimiter = d
	}
	if opts.Comment, err = singleRune("comment", f.comment); err != nil {
		return nil, err
	}
	return opts, nil
}

// singleRune parses a one-character flag value. "\t" is accepted for tab.
func singleRune(name, s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r := []rune(s)
	switch len(r) {
	case 0:
		return 0, nil
	case 1:
		return r[0], nil
	}
	return 0, errors.Errorf("--%s must be a single character, got %q", name, s)
}

func printSummary(w io.Writer, l *timeseries.Loader) {
	names := l.ChannelNames()
	times := l.TimeVector()

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "File:     %s\n", l.Path())
	fmt.Fprintf(w, "Rows:     %d\n", len(times))
	fmt.Fprintf(w, "Channels: %d\n", len(names))
	if len(times) > 0 {
		fmt.Fprintf(w, "Time:     %g to %g\n", times[0], times[len(times)-1])
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
	for j, name := range names {
		fmt.Fprintf(w, "  [%d] %s\n", j, name)
	}
}
