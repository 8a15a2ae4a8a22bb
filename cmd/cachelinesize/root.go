package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/llxisdsh/cacheline"
	"github.com/llxisdsh/cacheline/internal/report"
	"github.com/llxisdsh/cacheline/internal/sysfs"
)

type rootOptions struct {
	report    bool
	json      bool
	noOS      bool
	sysfsRoot string
	sysfsSet  bool
	logLevel  string
}

func newRootCommand(out io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "cachelinesize [OPTIONS]",
		Short:         "Print the CPU cache line size in bytes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sysfsSet = cmd.Flags().Changed("sysfs-root")
			return run(cmd.Context(), out, opts)
		},
	}

	installFlags(cmd.Flags(), &opts)
	return cmd
}

func installFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.BoolVar(&opts.report, "report", false, "Compare every known source of the line size")
	flags.BoolVar(&opts.json, "json", false, "Print JSON instead of text")
	flags.BoolVar(&opts.noOS, "no-os", false, "Ignore the line size reported by the operating system")
	flags.StringVar(&opts.sysfsRoot, "sysfs-root", sysfs.DefaultRoot, "Root of the sysfs tree")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "info", `Set the logging level ("debug"|"info"|"warn"|"error"|"fatal")`)
}

func run(ctx context.Context, out io.Writer, opts rootOptions) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	logrus.SetLevel(level)

	if opts.report {
		return runReport(ctx, out, opts)
	}

	var setupOpts []func(*cacheline.SetupConfig)
	if opts.sysfsSet {
		setupOpts = append(setupOpts, cacheline.WithSysfsRoot(opts.sysfsRoot))
	}
	if opts.noOS {
		setupOpts = append(setupOpts, cacheline.WithoutOSOverride())
	}
	cfg := cacheline.Setup(setupOpts...)
	logrus.WithFields(logrus.Fields{
		"size":      cfg.CacheLineSize,
		"supported": cacheline.Supported,
	}).Debug("cache line size set up")

	if opts.json {
		return errors.Wrap(json.NewEncoder(out).Encode(cfg), "encode config")
	}
	_, err = fmt.Fprintln(out, cfg.CacheLineSize)
	return err
}

func runReport(ctx context.Context, out io.Writer, opts rootOptions) error {
	r, err := report.Collect(ctx, report.Options{SysfsRoot: opts.sysfsRoot, NoOS: opts.noOS})
	if err != nil {
		return err
	}
	if !r.Consistent() {
		logrus.Warn("cache line size sources disagree")
	}

	if opts.json {
		return errors.Wrap(json.NewEncoder(out).Encode(r), "encode report")
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tSIZE\tERROR")
	for _, s := range r.Sources {
		size := "-"
		if s.OK() {
			size = fmt.Sprint(s.Size)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, size, s.Err)
	}
	return w.Flush()
}
