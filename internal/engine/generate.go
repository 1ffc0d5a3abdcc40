package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/tatianab/wayfarer/internal/models"
)

// RandomSource supplies the uniform samples world generation draws from.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a sample in [0, 1).
	Float64() float64
	// Intn returns a sample in [0, n).
	Intn(n int) int
}

// GenerationRules holds the per-cell category thresholds. Each threshold is
// tested against its own sample, in order helpful, dangerous, neutral; the
// first that passes decides the category.
type GenerationRules struct {
	HelpChance    float64
	DangerChance  float64
	NeutralChance float64
}

// DefaultRules yields roughly 25% helpful, 19% dangerous, 14% neutral and
// 42% plain places.
var DefaultRules = GenerationRules{
	HelpChance:    0.25,
	DangerChance:  0.25,
	NeutralChance: 0.25,
}

// Generate builds a width x height grid using DefaultRules.
func Generate(width, height int, src RandomSource) (*models.Grid, error) {
	return DefaultRules.Generate(width, height, src)
}

// Generate builds a width x height grid, drawing every place from src.
func (r GenerationRules) Generate(width, height int, src RandomSource) (*models.Grid, error) {
	return models.NewGrid(width, height, func(x, y int) *models.Place {
		return r.drawPlace(src)
	})
}

func (r GenerationRules) drawPlace(src RandomSource) *models.Place {
	biome := pick(src, models.Biomes)
	switch {
	case src.Float64() < r.HelpChance:
		return models.NewPlace(biome, pick(src, models.HelpfulAttributes), models.Helpful)
	case src.Float64() < r.DangerChance:
		return models.NewPlace(biome, pick(src, models.DangerousAttributes), models.Dangerous)
	case src.Float64() < r.NeutralChance:
		return models.NewPlace(biome, pick(src, models.NeutralAttributes), models.Neutral)
	}
	return models.NewPlace(biome, "", models.Plain)
}

func pick(src RandomSource, catalog []string) string {
	return catalog[src.Intn(len(catalog))]
}

// NewRandom returns a generator seeded with seed, or with a fresh seed from
// crypto/rand when seed is 0. The seed actually used is returned so a world
// can be replayed.
func NewRandom(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, 0, fmt.Errorf("read random seed: %w", err)
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
