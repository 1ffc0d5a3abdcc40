package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Width      int    `env:"WAYFARER_WIDTH"  envDefault:"7"`
	Height     int    `env:"WAYFARER_HEIGHT" envDefault:"7"`
	PlayerName string `env:"WAYFARER_PLAYER" envDefault:"Wanderer"`
	NPCCount   int    `env:"WAYFARER_NPCS"   envDefault:"3"`
	// Seed 0 picks a fresh random seed.
	Seed int64 `env:"WAYFARER_SEED"`

	VocabularyFile string `env:"WAYFARER_VOCABULARY"`
	RosterFile     string `env:"WAYFARER_ROSTER"`

	Plain   bool   `env:"WAYFARER_PLAIN"`
	LogFile string `env:"WAYFARER_LOG_FILE"`

	Locale string `env:"WAYFARER_LOCALE" envDefault:"en_US"`
	// LocalesDir holds extra .po catalogs; the built-in ones are used otherwise.
	LocalesDir string `env:"WAYFARER_LOCALES_DIR"`

	// GeminiAPIKey enables generated NPC dialogue when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LoadConfig reads .env (if present) and the environment, then lets flags
// override what they name.
func LoadConfig(fset *flag.FlagSet, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fset.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	fset.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "player name")
	fset.IntVar(&cfg.NPCCount, "npcs", cfg.NPCCount, "number of NPCs")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 for random)")
	fset.StringVar(&cfg.VocabularyFile, "vocabulary", cfg.VocabularyFile, "path to vocabulary yaml")
	fset.StringVar(&cfg.RosterFile, "roster", cfg.RosterFile, "path to NPC roster yaml")
	fset.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line mode instead of the full-screen UI")
	fset.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write debug log to this file")
	fset.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for game text")
	fset.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "directory of <lang>/LC_MESSAGES/default.po catalogs")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.NPCCount < 0 {
		return Config{}, fmt.Errorf("npc count must not be negative, got %d", cfg.NPCCount)
	}
	return cfg, nil
}
