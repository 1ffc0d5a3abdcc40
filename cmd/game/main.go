package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/wayfarer/internal/config"
	"github.com/tatianab/wayfarer/internal/dialogue"
	"github.com/tatianab/wayfarer/internal/engine"
	"github.com/tatianab/wayfarer/internal/models"
	"github.com/tatianab/wayfarer/internal/tui"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.LoadConfig(flag.NewFlagSet("wayfarer", flag.ExitOnError), args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "wayfarer")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := tui.UseLocale(cfg.LocalesDir, cfg.Locale); err != nil {
		return fmt.Errorf("loading locale: %w", err)
	}

	vocabulary, err := models.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return err
	}
	roster, err := models.LoadRoster(cfg.RosterFile)
	if err != nil {
		return err
	}

	rng, seed, err := engine.NewRandom(cfg.Seed)
	if err != nil {
		return err
	}
	log.Printf("world seed %d", seed)

	var writer engine.DialogueWriter = dialogue.Roster{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := dialogue.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("creating dialogue writer: %w", err)
		}
		defer gemini.Close()
		writer = gemini
	}

	eng, err := engine.NewEngine(ctx, engine.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		PlayerName: cfg.PlayerName,
		NPCCount:   cfg.NPCCount,
		Vocabulary: vocabulary,
		Roster:     roster,
		Random:     rng,
		Dialogue:   writer,
		Logger:     log.Default(),
	})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	if cfg.Plain {
		return eng.Run(ctx, os.Stdin, tui.NewPlainRenderer(os.Stdout))
	}
	if err := tui.Run(eng); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
