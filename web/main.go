package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/web/server"
)

func main() {
	envFile := flag.String("env", ".env", "Optional .env file")
	port := flag.Int("port", 0, "Port to serve on (overrides RTW_LISTEN_ADDR)")
	flag.Parse()

	logger := log.New("web")

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Errorf("Error loading config: %v", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.ListenAddr = fmt.Sprintf(":%d", *port)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	webServer, err := server.NewServer(cfg)
	if err != nil {
		logger.Errorf("Error creating server: %v", err)
		os.Exit(1)
	}

	logger.Noticef("Weekend Raytracer Web Server")
	logger.Noticef("Visit http://localhost%s/api/scenes to list scenes", cfg.ListenAddr)

	if err := webServer.Start(); err != nil {
		logger.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
