package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/server"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// serveCmd runs the HTTP API with the daily capital recording job.
type serveCmd struct {
	listen string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the portfolio HTTP API" }
func (*serveCmd) Usage() string {
	return `apf serve [-listen <addr>]

  Serves the JSON API under /api and records the capital once a day. Stops
  cleanly on SIGINT or SIGTERM.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listen, "listen", "", "Listen address. Defaults to the configured one.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	if c.listen != "" {
		cfg.Listen = c.listen
	}

	log := logrus.New()
	rates := portfolio.NewRateProvider(cfg.ManualFallback())
	srv := server.New(log, openStore(), rates, cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
