package models

import "github.com/google/uuid"

// StartingVitality is the player's vitality when a session begins.
const StartingVitality = 10

// Actor is anything that stands on the grid.
type Actor struct {
	ID       ActorID
	Name     string
	Pos      Position
	Vitality int
}

// NewActor places a new actor at pos.
func NewActor(name string, pos Position, vitality int) Actor {
	return Actor{
		ID:       uuid.New(),
		Name:     name,
		Pos:      pos,
		Vitality: vitality,
	}
}

// ApplyMove shifts the actor one cell in dir. Callers gate it with CanMove.
func (a *Actor) ApplyMove(dir Direction) {
	d := dir.Delta()
	a.Pos.X += d.X
	a.Pos.Y += d.Y
}

// Alive reports whether the actor still has vitality left.
func (a *Actor) Alive() bool {
	return a.Vitality > 0
}

// NPC is a named non-player character with a line of dialogue.
type NPC struct {
	Actor
	Dialogue string
}
