package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

var logger = log.New("rtw")

// setupLogging applies the configured level, then lets -v / -vv raise it
func setupLogging(ctx *cli.Context, cfg config.Config) {
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		logger.Warningf("%v, using notice", err)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// loadConfig reads the env file named by the global --env flag
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("env"))
	if err != nil {
		return config.Config{}, err
	}
	setupLogging(ctx, cfg)
	return cfg, nil
}
