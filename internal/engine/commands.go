package engine

import (
	"strings"

	"github.com/tatianab/wayfarer/internal/models"
)

type command func(e *Engine, noun string) []Notice

// verbs maps every accepted verb, aliases included, to its handler.
// Matching is case-sensitive.
var verbs = map[string]command{
	"move":   (*Engine).move,
	"go":     (*Engine).move,
	"m":      (*Engine).move,
	"talk":   (*Engine).talk,
	"talkTo": (*Engine).talk,
	"attack": (*Engine).attack,
}

// interpret maps one input line to a state transition. The grammar is
// "help", "quit", or "<verb> <noun>" where the noun is everything after the
// first space.
func (e *Engine) interpret(line string) []Notice {
	switch line {
	case "help":
		return []Notice{{Kind: NoticeHelp, Verbs: e.vocabulary.Verbs, Nouns: e.vocabulary.Nouns}}
	case "quit":
		e.finish(Quit)
		return nil
	}

	verb, noun, ok := strings.Cut(line, " ")
	if !ok {
		return []Notice{{Kind: NoticeInvalidInput, Subject: line}}
	}
	cmd, ok := verbs[verb]
	if !ok {
		return []Notice{{Kind: NoticeUnknownVerb, Subject: verb}}
	}
	return cmd(e, noun)
}

func (e *Engine) move(noun string) []Notice {
	dir, ok := models.ParseDirection(noun)
	if !ok {
		return []Notice{{Kind: NoticeUnknownNoun, Subject: noun}}
	}
	if !models.CanMove(noun, e.player.Pos, e.grid) {
		return []Notice{{Kind: NoticeImpassable, Direction: dir}}
	}

	e.player.ApplyMove(dir)
	place := e.CurrentPlace()
	place.Chart()
	e.grid.ChartNeighbors(e.player.Pos.X, e.player.Pos.Y)

	notices := []Notice{{Kind: NoticeMoved, Subject: place.Name(), Direction: dir}}
	return append(notices, e.applyEffect(place)...)
}

// applyEffect changes the player's vitality for landing on place.
func (e *Engine) applyEffect(place *models.Place) []Notice {
	switch place.Category() {
	case models.Dangerous:
		e.player.Vitality -= dangerDamage
		return []Notice{{Kind: NoticeDamage, Subject: place.Name(), Amount: dangerDamage}}
	case models.Helpful:
		e.player.Vitality += helpRestore
		return []Notice{{Kind: NoticeRestoration, Subject: place.Name(), Amount: helpRestore}}
	case models.Plain, models.Neutral, models.Start:
		return nil
	}
	return nil
}

func (e *Engine) talk(noun string) []Notice {
	var notices []Notice
	here := e.CurrentPlace()
	for _, npc := range e.npcs {
		if npc.Name != noun {
			continue
		}
		if e.PlaceOf(npc.Actor) == here {
			notices = append(notices, Notice{Kind: NoticeDialogue, Subject: npc.Name, Text: npc.Dialogue})
		} else {
			notices = append(notices, Notice{Kind: NoticeSelfTalk, Subject: npc.Name})
		}
	}
	return notices
}

func (e *Engine) attack(noun string) []Notice {
	var notices []Notice
	here := e.CurrentPlace()
	for _, npc := range e.npcs {
		if npc.Name != noun {
			continue
		}
		if e.PlaceOf(npc.Actor) != here {
			notices = append(notices, Notice{Kind: NoticeNothingToAttack, Subject: noun})
			continue
		}
		e.flee(npc)
		notices = append(notices, Notice{Kind: NoticeFlee, Subject: npc.Name, Direction: fleeDirection(e.player.Pos, npc.Pos)})
	}
	if len(notices) == 0 {
		notices = append(notices, Notice{Kind: NoticeNothingToAttack, Subject: noun})
	}
	return notices
}

// flee moves an attacked NPC one cell south, or north when south is off the
// grid. On a single-row grid it stays put.
func (e *Engine) flee(npc *models.NPC) {
	e.PlaceOf(npc.Actor).RemoveOccupant(npc.ID)
	switch {
	case models.CanMove("south", npc.Pos, e.grid):
		npc.ApplyMove(models.South)
	case models.CanMove("north", npc.Pos, e.grid):
		npc.ApplyMove(models.North)
	}
	e.PlaceOf(npc.Actor).AddOccupant(npc.ID)
	e.log.Printf("%s fled to %v", npc.Name, npc.Pos)
}

func fleeDirection(from, to models.Position) models.Direction {
	switch {
	case to.Y > from.Y:
		return models.South
	case to.Y < from.Y:
		return models.North
	}
	return 0
}
