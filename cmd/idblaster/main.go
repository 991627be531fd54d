package main

import (
	"context"
	"os"
	"time"

	"github.com/madlabz/idblaster"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := idblaster.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	client, err := idblaster.NewBotClient(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot client")
	}

	app := idblaster.New(config, client)
	idblaster.RegisterHandlers(app)
	app.AddHandler(idblaster.NewTypeHandler(func(*idblaster.Event, *idblaster.Context) {
		log.Info().Str("Bot", client.Username()).Msgf("Starting %s...", idblaster.BOT_NAME)
	}, nil, idblaster.OnStart))
	app.AddErrorHandler(idblaster.NewTypeHandler(onError, nil, idblaster.OnError))
	app.Initialize()

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start")
	}

	// Blocks until CTRL + C.
	app.Park()
	log.Info().Msg("Stopped")
}

func onError(event *idblaster.Event, context *idblaster.Context) {
	log.Error().Interface("Error", event.Error).Str("Type", event.Type.String()).Int("UpdateID", event.UpdateID).Msg("Handler failed")
}
