package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/xirr"
	"github.com/google/subcommands"
)

// absoluteCmd holds the flags for the 'absolute' subcommand.
type absoluteCmd struct {
	rate float64
	days int
}

func (*absoluteCmd) Name() string     { return "absolute" }
func (*absoluteCmd) Synopsis() string { return "convert an annual rate into the return over a period" }
func (*absoluteCmd) Usage() string {
	return `irr absolute -rate <rate> -days <days>

  Prints the percentage earned over days at the annual rate.
  See 'irr topic absolute'.
`
}

func (c *absoluteCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "Annual rate, 0.1 for 10%.")
	f.IntVar(&c.days, "days", 365, "Holding period in days.")
}

func (c *absoluteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintf(os.Stderr, "Error: -days must not be negative, got %d\n", c.days)
		return subcommands.ExitUsageError
	}
	p, err := xirr.AbsoluteRate(c.rate, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(p)
	return subcommands.ExitSuccess
}
