package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/wayfarer/internal/config"
	"github.com/tatianab/wayfarer/internal/dialogue"
	"github.com/tatianab/wayfarer/internal/engine"
	"github.com/tatianab/wayfarer/internal/models"
	"github.com/tatianab/wayfarer/internal/tui"
	"google.golang.org/api/option"
)

const maxTurns = 60

// player picks the next command for the simulated session.
type player interface {
	next(ctx context.Context, eng *engine.Engine) string
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig(flag.NewFlagSet("simulate", flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.SetOutput(io.Discard)
	if err := tui.UseLocale(cfg.LocalesDir, cfg.Locale); err != nil {
		log.Fatalf("Failed to load locale: %v", err)
	}

	roster, err := models.LoadRoster(cfg.RosterFile)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	vocabulary, err := models.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}
	rng, seed, err := engine.NewRandom(cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to seed world: %v", err)
	}

	eng, err := engine.NewEngine(ctx, engine.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		PlayerName: cfg.PlayerName,
		NPCCount:   cfg.NPCCount,
		Vocabulary: vocabulary,
		Roster:     roster,
		Random:     rng,
		Dialogue:   dialogue.Roster{},
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	var p player = &randomPlayer{rng: rand.New(rand.NewSource(seed)), npcs: eng.NPCs()}
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer client.Close()
		p = &geminiPlayer{model: client.GenerativeModel("gemini-2.5-flash"), fallback: p}
	}

	fmt.Printf("--- World seed %d, %dx%d ---\n", seed, cfg.Width, cfg.Height)
	out := tui.NewPlainRenderer(os.Stdout)
	out.RenderNotices(eng.Intro())

	for turn := 1; turn <= maxTurns && !eng.Finished(); turn++ {
		fmt.Printf("\n--- Turn %d ---\n", turn)
		action := p.next(ctx, eng)
		fmt.Printf("Player Action: %s\n", action)
		out.RenderNotices(eng.ProcessTurn(action))

		pl := eng.Player()
		fmt.Printf("Stats: Vitality=%d, Position=%v, Charted=%d/%d\n",
			pl.Vitality, pl.Pos, eng.Grid().ChartedCount(), cfg.Width*cfg.Height)
	}

	fmt.Println()
	fmt.Print(tui.RenderMap(eng))
	fmt.Printf("Game ended: %s after %d turns\n", eng.Outcome(), eng.Turns())
}

type randomPlayer struct {
	rng  *rand.Rand
	npcs []models.NPC
}

var moves = []string{"move north", "move south", "go east", "go west", "m w", "m a", "m s", "m d"}

func (r *randomPlayer) next(ctx context.Context, eng *engine.Engine) string {
	roll := r.rng.Intn(20)
	switch {
	case roll == 0:
		return "help"
	case roll == 1 && len(r.npcs) > 0:
		return "talk " + r.npcs[r.rng.Intn(len(r.npcs))].Name
	case roll == 2 && len(r.npcs) > 0:
		return "attack " + r.npcs[r.rng.Intn(len(r.npcs))].Name
	}
	return moves[r.rng.Intn(len(moves))]
}

type geminiPlayer struct {
	model    *genai.GenerativeModel
	fallback player
}

func (g *geminiPlayer) next(ctx context.Context, eng *engine.Engine) string {
	pl := eng.Player()
	prompt := fmt.Sprintf(`You are playing a text exploration game on a grid. Your goal is to chart every place without dying.
Dangerous places (!) cost 3 vitality, helpful places (+) restore 1. Uncharted places are shown as ?, you are @.

Map:
%s
Vitality: %d
Location: %s

Valid commands: "move north", "move south", "move east", "move west", "talk <name>", "attack <name>", "help", "quit".
What is your next command? Return ONLY the command string, no extra commentary.`,
		tui.RenderMap(eng),
		pl.Vitality,
		eng.CurrentPlace().Name(),
	)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return g.fallback.next(ctx, eng)
	}
	return strings.Trim(strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), "`\"")
}
