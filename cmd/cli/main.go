package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/quotejournal/internal/cli"
	"github.com/dmitrijs2005/quotejournal/internal/config"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
