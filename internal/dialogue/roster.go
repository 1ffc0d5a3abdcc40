// Package dialogue provides the writers NPC lines come from.
package dialogue

import (
	"context"

	"github.com/tatianab/wayfarer/internal/engine"
	"github.com/tatianab/wayfarer/internal/models"
)

var stockLines = map[models.Category][]string{
	models.Dangerous: {
		"Careful where you step. This ground has teeth.",
		"Turn back while your legs still carry you.",
	},
	models.Helpful: {
		"Rest a while. This place mends what the road breaks.",
		"Drink from the spring, it does a body good.",
	},
	models.Neutral: {
		"Quiet here. Too quiet, some would say.",
		"Nothing much happens here, and I like it that way.",
	},
	models.Plain: {
		"Fine day for walking, isn't it?",
		"Seen any strange lands on your way?",
	},
	models.Start: {
		"Every journey starts around a campfire.",
	},
}

// Roster writes the line the roster gives an NPC, or a stock line that fits
// the place it stands on.
type Roster struct{}

// Line implements engine.DialogueWriter.
func (Roster) Line(ctx context.Context, s engine.Speaker) (string, error) {
	if s.Roster != "" {
		return s.Roster, nil
	}
	lines := stockLines[s.Category]
	if len(lines) == 0 {
		return "", nil
	}
	return lines[len(s.Name)%len(lines)], nil
}
