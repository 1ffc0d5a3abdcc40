package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/tatianab/wayfarer/internal/models"
)

const (
	dangerDamage  = 3
	helpRestore   = 1
	stockDialogue = "Safe travels, stranger."
	defaultPlayer = "Wanderer"
)

// Speaker describes an NPC to a DialogueWriter.
type Speaker struct {
	Name     string
	Place    string
	Category models.Category
	// Roster is the line the roster gives this NPC, if any.
	Roster string
}

// DialogueWriter supplies the line an NPC says when spoken to.
type DialogueWriter interface {
	Line(ctx context.Context, s Speaker) (string, error)
}

// Options configure a new Engine.
type Options struct {
	Width      int
	Height     int
	PlayerName string
	NPCCount   int

	Vocabulary models.Vocabulary
	Roster     models.Roster

	// Random drives generation and NPC placement.
	Random RandomSource
	// Rules defaults to DefaultRules when nil.
	Rules *GenerationRules
	// Dialogue defaults to the roster's lines when nil.
	Dialogue DialogueWriter
	Logger   *log.Logger
}

// Engine owns one game session: the grid, the player and the NPCs.
type Engine struct {
	grid       *models.Grid
	player     models.Actor
	npcs       []*models.NPC
	vocabulary models.Vocabulary

	finished bool
	outcome  Outcome
	turns    int

	log *log.Logger
}

// NewEngine generates a world and places the player on its start cell.
func NewEngine(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Random == nil {
		return nil, fmt.Errorf("new engine: random source is required")
	}
	if opts.NPCCount < 0 {
		return nil, fmt.Errorf("new engine: npc count %d is negative", opts.NPCCount)
	}
	rules := DefaultRules
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	name := opts.PlayerName
	if name == "" {
		name = defaultPlayer
	}

	grid, err := rules.Generate(opts.Width, opts.Height, opts.Random)
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	logger.Printf("generated %dx%d world, start at %v", grid.Width, grid.Height, grid.Start)

	e := &Engine{
		grid:       grid,
		player:     models.NewActor(name, grid.Start, models.StartingVitality),
		vocabulary: opts.Vocabulary,
		log:        logger,
	}
	if err := e.spawnNPCs(ctx, opts); err != nil {
		return nil, err
	}
	e.grid.ChartNeighbors(grid.Start.X, grid.Start.Y)
	e.checkEnd()
	return e, nil
}

func (e *Engine) spawnNPCs(ctx context.Context, opts Options) error {
	for i := 0; i < opts.NPCCount; i++ {
		entry := opts.Roster.Entry(i)
		pos := models.Position{X: opts.Random.Intn(e.grid.Width), Y: opts.Random.Intn(e.grid.Height)}
		npc := &models.NPC{Actor: models.NewActor(entry.Name, pos, models.StartingVitality)}
		place := e.mustCell(pos)
		place.AddOccupant(npc.ID)

		npc.Dialogue = entry.Dialogue
		if opts.Dialogue != nil {
			line, err := opts.Dialogue.Line(ctx, Speaker{
				Name:     npc.Name,
				Place:    place.Name(),
				Category: place.Category(),
				Roster:   entry.Dialogue,
			})
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("spawn %s: %w", npc.Name, ctxErr)
			}
			switch {
			case err != nil:
				e.log.Printf("Warning: dialogue for %s: %v", npc.Name, err)
			case line != "":
				npc.Dialogue = line
			}
		}
		if npc.Dialogue == "" {
			npc.Dialogue = stockDialogue
		}

		e.npcs = append(e.npcs, npc)
		e.log.Printf("spawned %s at %v", npc.Name, pos)
	}
	return nil
}

// mustCell looks up a position the engine itself maintains. An out of
// bounds position there is a bug, not a player error.
func (e *Engine) mustCell(pos models.Position) *models.Place {
	p, err := e.grid.CellAt(pos.X, pos.Y)
	if err != nil {
		panic(err)
	}
	return p
}

// PlaceOf returns the place an actor stands on.
func (e *Engine) PlaceOf(a models.Actor) *models.Place {
	return e.mustCell(a.Pos)
}

// CurrentPlace returns the place the player stands on.
func (e *Engine) CurrentPlace() *models.Place {
	return e.PlaceOf(e.player)
}

func (e *Engine) Grid() *models.Grid { return e.grid }

func (e *Engine) Player() models.Actor { return e.player }

func (e *Engine) Vocabulary() models.Vocabulary { return e.vocabulary }

func (e *Engine) Finished() bool { return e.finished }

func (e *Engine) Outcome() Outcome { return e.outcome }

func (e *Engine) Turns() int { return e.turns }

// NPCs returns a copy of every NPC.
func (e *Engine) NPCs() []models.NPC {
	out := make([]models.NPC, 0, len(e.npcs))
	for _, n := range e.npcs {
		out = append(out, *n)
	}
	return out
}

// Intro is what a front end shows before the first turn.
func (e *Engine) Intro() []Notice {
	notices := []Notice{{Kind: NoticeWelcome, Subject: e.player.Name}}
	if e.finished {
		notices = append(notices, e.endNotice())
	}
	return notices
}

// ProcessTurn interprets one line of input, applies its effects and checks
// whether the session is over. A finished engine ignores further input.
func (e *Engine) ProcessTurn(line string) []Notice {
	if e.finished {
		return nil
	}
	e.turns++

	notices := e.interpret(line)
	e.checkEnd()
	if e.finished {
		notices = append(notices, e.endNotice())
	}
	e.log.Printf("turn %d: %q -> %d notices, vitality %d, charted %d/%d",
		e.turns, line, len(notices), e.player.Vitality, e.grid.ChartedCount(), e.grid.Width*e.grid.Height)
	return notices
}

func (e *Engine) checkEnd() {
	if e.finished {
		return
	}
	switch {
	case !e.player.Alive():
		e.finish(Died)
	case e.grid.IsFullyCharted():
		e.finish(Charted)
	}
}

func (e *Engine) finish(o Outcome) {
	e.finished = true
	e.outcome = o
	e.log.Printf("session finished: %s after %d turns", o, e.turns)
}

func (e *Engine) endNotice() Notice {
	return Notice{Kind: NoticeEnd, Subject: e.player.Name, Outcome: e.outcome}
}
