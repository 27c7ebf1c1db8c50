package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Disc Dodge.

Controls:
  W/A/S/D, arrows  - Move
  R                - New run (after the run ends)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  dodge play
  dodge play --seed 7
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting session", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
