package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/mycomarket/mycomarket-go/internal/buildinfo"
	"github.com/mycomarket/mycomarket-go/internal/client/cli"
	"github.com/mycomarket/mycomarket-go/internal/client/config"
	"github.com/mycomarket/mycomarket-go/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log := logging.NewZerologLogger(zl)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
