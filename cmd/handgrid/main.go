// Command handgrid prints the border-plus-one expansion of a starting-hand
// range given as labels on the command line.
//
//	handgrid AA KK QQ AKs AKo
//	handgrid "TT,99,AJs"
//
// Environment: HANDGRID_LOG_LEVEL (trace, debug, info, warn, error),
// HANDGRID_NO_COLOR, HANDGRID_SHOW_GRID.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/holdemgrid/hands"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <hand>[,<hand>...] ...\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		pterm.Warning.Println(err)
	}
	pterm.DefaultLogger.Level = level

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	hands.SetLogger(logger)

	if err := run(logger, cfg, os.Args[1:]); err != nil {
		logger.Error("handgrid failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config, args []string) error {
	rng, err := hands.ParseRange(strings.Join(args, ","))
	if err != nil {
		return fmt.Errorf("parse range: %w", err)
	}
	r := newReport(rng)
	logger.Debug("range expanded",
		"hands", len(r.rng),
		"combos", r.combos,
		"border", len(r.border),
		"expansion", len(r.expansion))

	renderSummary(r)
	if !cfg.ShowGrid {
		return nil
	}
	return renderGrid(r)
}
