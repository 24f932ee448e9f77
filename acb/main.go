package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/acb/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("acb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	cmd.LoadDotEnv()
	flag.Parse()
	if err := cmd.ApplyEnv(flag.CommandLine, cmd.GlobalEnv); err != nil {
		log.Printf("env-error err=%q", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
