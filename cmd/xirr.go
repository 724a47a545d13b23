package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/xirr"
	"github.com/etnz/xirr/date"
	"github.com/etnz/xirr/renderer"
	"github.com/google/subcommands"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	file          string
	configFile    string
	method        string
	workers       int
	maxIterations int
	verbose       bool
	raw           bool
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "compute the internal rate of return of a cash flow" }
func (*xirrCmd) Usage() string {
	return `irr xirr [-f <flows.jsonl>] [-method auto|newton|bisection] [date:amount ...]

  Computes the annual rate of return of a cash flow given as a JSONL file
  and/or as date:amount arguments. See 'irr topic xirr'.

Usage Examples:
$ irr xirr 2015-06-01:1000000 2015-10-01:-2200000 2015-11-01:-800000
$ irr xirr -f flows.jsonl -method newton

`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSONL file of cash flows, '-' for stdin.")
	f.StringVar(&c.configFile, "config", "", "YAML file with the solver configuration.")
	f.StringVar(&c.method, "method", "auto", "Solver: auto, newton or bisection.")
	f.IntVar(&c.workers, "workers", 1, "Goroutines evaluating the present value.")
	f.IntVar(&c.maxIterations, "max-iterations", xirr.MaxIterations, "Iterations before the solver gives up.")
	f.BoolVar(&c.verbose, "v", false, "Log solver steps on stderr.")
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown.")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	opts, err := c.options(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger := opts.Logger
	defer logger.Sync()

	dates, amounts, err := c.flows(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cash flows: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := renderer.NewReport(dates, amounts, opts)
	md := renderer.RenderReport(report)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}

	if report.Error != "" {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// options builds the solver options from the configuration file, then from
// the flags explicitly set.
func (c *xirrCmd) options(set map[string]bool) (xirr.Options, error) {
	opts := xirr.DefaultOptions()
	if c.configFile != "" {
		cfg, err := loadConfig(c.configFile)
		if err != nil {
			return opts, fmt.Errorf("could not load configuration %q: %w", c.configFile, err)
		}
		if err := cfg.apply(&opts); err != nil {
			return opts, fmt.Errorf("invalid configuration %q: %w", c.configFile, err)
		}
	}

	flags := config{}
	if set["method"] {
		flags.Method = c.method
	}
	if set["workers"] {
		flags.Workers = c.workers
	}
	if set["max-iterations"] {
		flags.MaxIterations = c.maxIterations
	}
	if err := flags.apply(&opts); err != nil {
		return opts, err
	}
	opts.Logger = newLogger(c.verbose)
	return opts, nil
}

// flows returns the cash flows of the JSONL file if any, followed by the ones in args.
func (c *xirrCmd) flows(args []string) ([]date.Date, []*float64, error) {
	var dates []date.Date
	var amounts []*float64

	if c.file != "" {
		var r io.Reader = os.Stdin
		if c.file != "-" {
			f, err := os.Open(c.file)
			if err != nil {
				return nil, nil, err
			}
			defer f.Close()
			r = f
		}
		ds, as, err := xirr.DecodeFlows(r)
		if err != nil {
			return nil, nil, err
		}
		dates, amounts = ds, as
	}

	for _, arg := range args {
		d, a, err := parseFlow(arg)
		if err != nil {
			return nil, nil, err
		}
		dates = append(dates, d)
		amounts = append(amounts, a)
	}
	if len(dates) == 0 {
		return nil, nil, fmt.Errorf("no cash flow, use -f or date:amount arguments")
	}
	return dates, amounts, nil
}

// parseFlow parses a "date:amount" argument. An empty amount or "null" is a missing amount.
func parseFlow(arg string) (date.Date, *float64, error) {
	on, value, ok := strings.Cut(arg, ":")
	if !ok {
		return date.Date{}, nil, fmt.Errorf("invalid cash flow %q want format date:amount", arg)
	}
	d, err := date.Parse(on)
	if err != nil {
		return date.Date{}, nil, err
	}
	if value == "" || value == "null" {
		return d, nil, nil
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return date.Date{}, nil, fmt.Errorf("invalid amount in %q: %w", arg, err)
	}
	return d, &amount, nil
}
