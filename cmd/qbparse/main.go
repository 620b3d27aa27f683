package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ledgerline/qbparse/internal/analyzer"
	"github.com/ledgerline/qbparse/internal/config"
	"github.com/ledgerline/qbparse/internal/formatter"
	"github.com/ledgerline/qbparse/internal/loader"
	"github.com/ledgerline/qbparse/internal/parser"
	"github.com/ledgerline/qbparse/internal/statement"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("qbparse %s (commit: %s, built: %s)\n", Version, Commit, Date)
		return
	}

	statementType := flag.String("type", "balance-sheet", "statement type: balance-sheet, profit-loss, cash-flow, or historical")
	configPath := flag.String("config", "", "path to a qbparse config file")
	asJSON := flag.Bool("json", false, "print the parsed statement as JSON")
	verbose := flag.Bool("verbose", false, "log loading and parsing details to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qbparse [flags] <export-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*statementType, flag.Arg(0), *configPath, *asJSON, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "qbparse: %v\n", err)
		os.Exit(1)
	}
}

func run(statementType, path, configPath string, asJSON, verbose bool) error {
	log := zap.NewNop()
	if verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	rows, err := loader.New(log).Load(path)
	if err != nil {
		return err
	}

	format := formatter.DefaultFormat()
	if sample := settings.NumberFormat(); sample != "" {
		format = formatter.ParseNumberFormat(sample)
	}

	switch statementType {
	case "balance-sheet":
		cfg, err := settings.Statement(parser.BalanceSheetConfig())
		if err != nil {
			return err
		}
		bs, err := parser.NewBalanceSheetParser(cfg).Parse(rows)
		if err != nil {
			return err
		}
		report(analyzer.Analyze(bs.Statement))
		return emit(bs.Statement, format, asJSON)

	case "profit-loss":
		cfg, err := settings.Statement(parser.ProfitLossConfig())
		if err != nil {
			return err
		}
		pl, err := parser.NewProfitLossParser(cfg).Parse(rows)
		if err != nil {
			return err
		}
		report(analyzer.Analyze(pl.Statement))
		return emit(pl.Statement, format, asJSON)

	case "cash-flow":
		cfg, err := settings.Statement(parser.CashFlowConfig())
		if err != nil {
			return err
		}
		cf, err := parser.NewCashFlowParser(cfg).Parse(rows)
		if err != nil {
			return err
		}
		report(analyzer.Analyze(cf.Statement))
		return emit(cf.Statement, format, asJSON)

	case "historical":
		cfg, err := settings.Statement(parser.ProfitLossConfig())
		if err != nil {
			return err
		}
		pl, diags, err := parser.NewHistoricalParser(cfg, settings.ExpectedPeriods(), log).Parse(rows)
		if err != nil {
			return err
		}
		report(append(diags, analyzer.Analyze(pl.Statement)...))
		return emit(pl.Statement, format, asJSON)
	}

	return fmt.Errorf("unknown statement type: %s", statementType)
}

// report writes diagnostics to stderr so stdout stays clean for the
// rendered statement.
func report(diags []analyzer.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Code, d.Message)
	}
}

func emit[V statement.Value](st *statement.Statement[V], format formatter.NumberFormat, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Print(formatter.Render(st, format))
	return nil
}
