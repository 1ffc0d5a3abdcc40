package models

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Category is the gameplay effect class of a place.
type Category int

const (
	Plain Category = iota
	Dangerous
	Helpful
	Neutral
	Start
)

func (c Category) String() string {
	switch c {
	case Plain:
		return "plain"
	case Dangerous:
		return "dangerous"
	case Helpful:
		return "helpful"
	case Neutral:
		return "neutral"
	case Start:
		return "start"
	}
	return "unknown"
}

// Catalogs places are drawn from.
var (
	Biomes              = []string{"Desert", "Mountains", "Meadow", "Caverns", "Forest", "Swamp", "Wasteland", "Taiga", "Valley"}
	HelpfulAttributes   = []string{"Lush", "Fungal", "Sacred"}
	NeutralAttributes   = []string{"Silent", "Empty", "Overgrown"}
	DangerousAttributes = []string{"Blazing", "Poisonous", "Cursed", "Volcanic", "Treacherous", "Shadow"}
)

const startBiome = "Camp"

// ActorID identifies a player or NPC.
type ActorID = uuid.UUID

// Place is a single grid cell. Its biome, attribute and category never change
// after creation; only the charted flag and the occupant set do.
type Place struct {
	Biome     string
	Attribute string

	category  Category
	charted   bool
	occupants mapset.Set[ActorID]
}

// NewPlace creates an uncharted place.
func NewPlace(biome, attribute string, category Category) *Place {
	return &Place{
		Biome:     biome,
		Attribute: attribute,
		category:  category,
		occupants: mapset.New[ActorID](),
	}
}

// NewStartPlace creates the charted place the player starts on.
func NewStartPlace() *Place {
	p := NewPlace(startBiome, "", Start)
	p.charted = true
	return p
}

func (p *Place) Category() Category { return p.category }

func (p *Place) Charted() bool { return p.charted }

// Chart marks the place as seen. Charting is one-way.
func (p *Place) Chart() { p.charted = true }

func (p *Place) AddOccupant(id ActorID) { p.occupants.Put(id) }

func (p *Place) RemoveOccupant(id ActorID) { p.occupants.Remove(id) }

func (p *Place) HasOccupant(id ActorID) bool { return p.occupants.Has(id) }

// Occupied reports whether any NPC stands here.
func (p *Place) Occupied() bool { return p.occupants.Size() > 0 }

// Name is the display name, e.g. "Lush Forest".
func (p *Place) Name() string {
	if p.Attribute == "" {
		return p.Biome
	}
	return p.Attribute + " " + p.Biome
}

func (p *Place) String() string {
	return p.Name()
}
