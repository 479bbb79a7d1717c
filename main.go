package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/freer4an/rpc-game-nodejs/internal/cli"
	"github.com/freer4an/rpc-game-nodejs/internal/config"
	"github.com/freer4an/rpc-game-nodejs/internal/logging"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	opts, done, err := cli.Parse(os.Args[1:], os.Stdout, cfg)
	if err != nil {
		var ee *cli.ExitError
		if errors.As(err, &ee) {
			log.Error().Msg(ee.Message)
			os.Exit(ee.Code)
		}
		log.Fatal().Err(err).Msg("parse arguments")
	}
	if done {
		return
	}
	logging.Setup(os.Stderr, opts.LogLevel, cfg.LogFormat)

	sig, err := cli.Run(*opts, os.Stdin, os.Stdout, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	os.Exit(cli.ExitCode(sig))
}
