package main

import (
	"flag"
	"os"

	"github.com/freer4an/rpc-game-nodejs/internal/config"
	"github.com/freer4an/rpc-game-nodejs/internal/tools/verify"
)

func main() {
	cfg, err := verify.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := verify.Run(cfg, os.Stdout); err != nil {
		config.Exitf("verify: %v", err)
	}
}
