package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"omaha-recon/recon"
)

func main() {
	inputPath := flag.String("input", "", "path to a detection cycle JSON file")
	jsonOut := flag.Bool("json", false, "emit the snapshot as JSON instead of rendering it")
	flag.Parse()

	// Local overrides only; a missing .env is the normal case.
	_ = godotenv.Load()

	plog := &pterm.DefaultLogger
	if os.Getenv("DEBUG_MODE") == "true" {
		plog = pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug)
	}
	logger := slog.New(pterm.NewSlogHandler(plog))

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -input <cycle.json> [-json]\n", os.Args[0])
		os.Exit(1)
	}

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		logger.Error("reading input", "path", *inputPath, "err", err)
		os.Exit(1)
	}
	var in recon.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		logger.Error("parsing input", "path", *inputPath, "err", err)
		os.Exit(1)
	}

	snap, procErr := recon.NewProcessor(logger).Process(in)

	if *jsonOut {
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			logger.Error("encoding snapshot", "err", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		renderSnapshot(snap)
	}

	if procErr != nil {
		logger.Error("cycle not reconciled", "err", procErr)
		os.Exit(1)
	}
}
