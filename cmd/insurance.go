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

type insuranceCmd struct {
	income     string
	sumAssured string
	currency   string
	out        io.Writer
}

func (*insuranceCmd) Name() string     { return "insurance" }
func (*insuranceCmd) Synopsis() string { return "check life cover against yearly income" }
func (*insuranceCmd) Usage() string {
	return `pfm insurance -income <amount> -sum-assured <amount> [-c <currency>]

  Cover is adequate when the sum assured is at least ten times the yearly income.
  Exits with status 1 when cover is inadequate.
`
}

func (c *insuranceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.income, "income", "0", "Yearly income")
	f.StringVar(&c.sumAssured, "sum-assured", "0", "Insurance sum assured")
	f.StringVar(&c.currency, "c", domain.DefaultCurrency, "Currency used for display")
}

func (c *insuranceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	income, err := parseAmount("income", c.income)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	sumAssured, err := parseAmount("sum-assured", c.sumAssured)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	out := stdout(c.out)
	required := analysis.RequiredInsuranceCover(income)
	if analysis.IsInsuranceCoverageAdequate(income, sumAssured) {
		fmt.Fprintf(out, "Adequate: %s covers the required %s\n",
			domain.FormatAmount(sumAssured, c.currency), domain.FormatAmount(required, c.currency))
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(out, "Inadequate: %s is short of the required %s by %s\n",
		domain.FormatAmount(sumAssured, c.currency), domain.FormatAmount(required, c.currency),
		domain.FormatAmount(required.Sub(sumAssured), c.currency))
	return subcommands.ExitFailure
}
