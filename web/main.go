package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mkarrel/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	webServer := server.NewServer(*port, log.Logger)
	log.Info().Int("port", *port).Msg("Whitted raytracer preview server")

	if err := webServer.Start(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
