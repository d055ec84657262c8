// Command maxweight prints the number and weight of the heaviest record in data.bin.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ljmsc/recscan"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("RECSCAN_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	log := recscan.NewTextLogger(level)
	// the exit status stays 0 whatever happens
	if err := run(os.Stdout, recscan.DefaultPath, recscan.Config{Logger: log}); err != nil {
		log.Debug("maxweight failed", "error", err)
	}
}

func run(w io.Writer, path string, config recscan.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	scanner, err := recscan.NewScanner(config)
	if err != nil {
		return err
	}

	records := scanner.Load(path)
	return recscan.Report(w, recscan.FindMax(records))
}
