package main

import (
	"context"
	"log"
	"os"

	"emojournal/internal/buildinfo"
	"emojournal/internal/client/cli"
	"emojournal/internal/client/config"
	"emojournal/internal/logging"

	"github.com/rs/zerolog"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
