package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"

	"thinfilm/app"
	"thinfilm/entity/format"
	"thinfilm/entity/mode"
	"thinfilm/entity/parameters"
)

func main() {
	var (
		configPath = flag.String("config", "", "yaml parameters file; defaults are used when empty")
		output     = flag.String("output", "reflectivity_spectra.html", "output file path")
		formatFlag = flag.String("format", "html", "output format: html, png or csv")
		modeFlag   = flag.String("mode", "lines", "chart mode: lines or heatmap")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	f, err := format.UnmarshalText(*formatFlag)
	if err != nil {
		log.Fatal(err)
	}
	m, err := mode.UnmarshalText(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	params := parameters.Default()
	if *configPath != "" {
		if params, err = parameters.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if err := app.New(*output, f, m, params).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
