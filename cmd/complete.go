package cmd

import (
	"flag"
	"os"
	"strings"

	"github.com/etnz/acb"
	"github.com/etnz/acb/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger":      predict.Files("*.jsonl"),
			"config":      predict.Files("*.json"),
			"config-path": predict.Nothing,
			"security":    complete.PredictFunc(predictSecurities),
		},
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		f.VisitAll(func(fl *flag.Flag) { sub.Flags[fl.Name] = predictFlag(fl.Name) })
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}

func predictFlag(name string) complete.Predictor {
	switch name {
	case "c":
		return predict.Set{"CAD", "USD", "EUR", "GBP"}
	case "period":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	default:
		return predict.Nothing
	}
}

// predictSecurities returns the tickers of the securities object selected
// by -config-path in the configuration file.
func predictSecurities(prefix string) []string {
	f, err := os.Open(*configFile)
	if err != nil {
		return nil
	}
	defer f.Close()
	all, err := acb.Tickers(f, *configPath)
	if err != nil {
		return nil
	}
	var tickers []string
	for _, t := range all {
		if strings.HasPrefix(t, prefix) {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
