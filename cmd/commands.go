// Package cmd holds the pfm command line subcommands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"pfm-backend/domain"
)

// Commands lists every subcommand the pfm binary registers.
var Commands = []subcommands.Command{
	&serveCmd{},
	&taxCmd{},
	&insuranceCmd{},
	&analyzeCmd{},
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	if err := domain.ValidateAmount(d); err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	return d, nil
}
