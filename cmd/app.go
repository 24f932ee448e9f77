// Package cmd implements the CLI application computing the adjusted cost base of a security.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/acb"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&reportCmd{},
	&gainsCmd{},
	&transactionsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var configFile = flag.String("config", "acb.json", "Path to the security configuration file (JSON)")
var configPath = flag.String("config-path", "$", "JSONPath to the securities object in the configuration file")
var security = flag.String("security", "", "Security to process, required when the configuration defines several")

// stdout and stderr are where commands write, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// GlobalEnv maps environment variables to the global flags they provide a default for.
var GlobalEnv = map[string]string{
	"ACB_LEDGER":      "ledger",
	"ACB_CONFIG":      "config",
	"ACB_CONFIG_PATH": "config-path",
	"ACB_SECURITY":    "security",
}

// currencyEnv maps the reporting currency variable to the subcommands flag.
var currencyEnv = map[string]string{"ACB_CURRENCY": "c"}

// LoadDotEnv loads the .env file of the working directory, if any, into the environment.
// Variables already set in the environment are kept.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("dotenv-error err=%q", err)
	}
}

// ApplyEnv sets the flags of f that were not given on the command line from the
// environment variables of vars.
func ApplyEnv(f *flag.FlagSet, vars map[string]string) error {
	explicit := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })

	for env, name := range vars {
		value, ok := os.LookupEnv(env)
		if !ok || explicit[name] || f.Lookup(name) == nil {
			continue
		}
		if err := f.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}

// inputs is everything read from disk for a run.
type inputs struct {
	ledger *acb.Ledger
	conf   acb.SecurityConfig
	txs    []acb.Transaction
}

// loadInputs reads the ledger and the configuration, and classifies the ledger entries.
func loadInputs() (*inputs, error) {
	conf, err := decodeConfig(*configFile, *configPath, *security)
	if err != nil {
		return nil, err
	}
	ledger, err := decodeLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	txs, err := acb.Classify(ledger.Entries, conf)
	if err != nil {
		return nil, fmt.Errorf("cannot classify %q: %w", *ledgerFile, err)
	}
	return &inputs{ledger: ledger, conf: conf, txs: txs}, nil
}

func decodeLedger(filename string) (*acb.Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()
	ledger, err := acb.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", filename, err)
	}
	return ledger, nil
}

func decodeConfig(filename, path, ticker string) (acb.SecurityConfig, error) {
	f, err := os.Open(filename)
	if err != nil {
		return acb.SecurityConfig{}, fmt.Errorf("cannot open configuration: %w", err)
	}
	defer f.Close()
	conf, err := acb.LoadConfig(f, path, ticker)
	if err != nil {
		return acb.SecurityConfig{}, fmt.Errorf("cannot read configuration %q: %w", filename, err)
	}
	return conf, nil
}
