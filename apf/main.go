package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Keiner111/Analsis-de-portafolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Shell completion. Exits early when invoked by the shell.
	completion := &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"storage": predict.Dirs("*")},
	}
	completion.Complete("apf")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
