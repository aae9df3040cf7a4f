package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"pfm-backend/domain"
	"pfm-backend/repository"
	"pfm-backend/service"
)

type analyzeCmd struct {
	file     string
	spending string
	in       io.Reader
	out      io.Writer
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "financial analysis of an account snapshot file" }
func (*analyzeCmd) Usage() string {
	return `pfm analyze -f <snapshot.json|-> [-spending <amount>]

  Reads an account snapshot as JSON and prints the analysis report.
  Use -f - to read the snapshot from stdin.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Snapshot JSON file, - for stdin")
	f.StringVar(&c.spending, "spending", "0", "Current spending used for persistency")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	spending, err := parseAmount("spending", c.spending)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	snapshot, err := c.readSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := service.NewAnalysisService(repository.NewAccountRepositoryMemory(), nil, 0, logger)

	report, err := svc.AnalyzeSnapshot(ctx, snapshot, spending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analysing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(stdout(c.out))
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *analyzeCmd) readSnapshot() (domain.AccountSnapshot, error) {
	var r io.Reader = os.Stdin
	if c.in != nil {
		r = c.in
	}
	if c.file != "-" {
		f, err := os.Open(c.file)
		if err != nil {
			return domain.AccountSnapshot{}, err
		}
		defer f.Close()
		r = f
	}

	var snapshot domain.AccountSnapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return domain.AccountSnapshot{}, err
	}
	return snapshot, nil
}
