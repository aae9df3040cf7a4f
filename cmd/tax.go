package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"pfm-backend/analysis"
	"pfm-backend/domain"
)

type taxCmd struct {
	income   string
	reliefs  string
	rebates  string
	currency string
	out      io.Writer
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "progressive income tax for a yearly income" }
func (*taxCmd) Usage() string {
	return `pfm tax -income <amount> [-reliefs <amount>] [-rebates <amount>] [-c <currency>]

  Prints the tax due per bracket and in total.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.income, "income", "", "Yearly income")
	f.StringVar(&c.reliefs, "reliefs", "0", "Tax reliefs deducted from income")
	f.StringVar(&c.rebates, "rebates", "0", "Tax rebates deducted from the computed tax")
	f.StringVar(&c.currency, "c", domain.DefaultCurrency, "Currency used for display")
}

func (c *taxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.income == "" {
		fmt.Fprintln(os.Stderr, "-income is required")
		return subcommands.ExitUsageError
	}
	income, err := parseAmount("income", c.income)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	reliefs, err := parseAmount("reliefs", c.reliefs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	rebates, err := parseAmount("rebates", c.rebates)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	result := analysis.TaxBreakdown(income, reliefs, rebates)
	out := stdout(c.out)

	fmt.Fprintf(out, "Chargeable income: %s\n", domain.FormatAmount(result.ChargeableIncome, c.currency))
	for _, b := range result.Breakdown {
		upper := "and above"
		if !b.Bracket.Unbounded {
			upper = "to " + domain.FormatAmount(b.Bracket.Max, c.currency)
		}
		fmt.Fprintf(out, "  %s %s at %s%%: %s\n",
			domain.FormatAmount(b.Bracket.Min, c.currency), upper,
			b.Bracket.Rate.Shift(2).String(), domain.FormatAmount(b.Tax, c.currency))
	}
	fmt.Fprintf(out, "Gross tax: %s\n", domain.FormatAmount(result.GrossTax, c.currency))
	fmt.Fprintf(out, "Tax payable: %s\n", domain.FormatAmount(result.Tax, c.currency))
	return subcommands.ExitSuccess
}
