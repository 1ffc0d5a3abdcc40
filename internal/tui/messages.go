package tui

import (
	"strings"

	"github.com/tatianab/wayfarer/internal/engine"
)

// NoticeText words a notice for the player. Every string goes through
// the active locale so it can be translated with a .po catalog.
func NoticeText(n engine.Notice) string {
	switch n.Kind {
	case engine.NoticeWelcome:
		return locale.Get("Welcome to Wayfarer, %s! Chart every place in the land to win. Type 'help' if you need help.", n.Subject)
	case engine.NoticeMoved:
		return locale.Get("You head %s into the %s.", n.Direction, n.Subject)
	case engine.NoticeDamage:
		return locale.Get("This place is dangerous, you took %d damage.", n.Amount)
	case engine.NoticeRestoration:
		return locale.Get("A strange force rests here, you gain %d vitality.", n.Amount)
	case engine.NoticeImpassable:
		return locale.Get("An impassable mountain range stands in your way to the %s.", n.Direction)
	case engine.NoticeUnknownVerb:
		return locale.Get("\"%s\" is an unknown verb.", n.Subject)
	case engine.NoticeUnknownNoun:
		return locale.Get("\"%s\" is an unknown noun.", n.Subject)
	case engine.NoticeInvalidInput:
		return locale.Get("\"%s\" is not a valid input.", n.Subject)
	case engine.NoticeDialogue:
		return locale.Get("You approach %s, who turns around and says: \"%s\"", n.Subject, n.Text)
	case engine.NoticeSelfTalk:
		return locale.Get("You talk to yourself, feeling a bit silly. %s is nowhere near.", n.Subject)
	case engine.NoticeFlee:
		if n.Direction == 0 {
			return locale.Get("Before you can draw your sword %s spots you, but has nowhere to run.", n.Subject)
		}
		return locale.Get("Before you can draw your sword %s spots you and runs %s.", n.Subject, n.Direction)
	case engine.NoticeNothingToAttack:
		return locale.Get("You draw your sword and lash out at the imagined threats.")
	case engine.NoticeHelp:
		return helpText(n.Verbs, n.Nouns)
	case engine.NoticeEnd:
		return endText(n)
	}
	return ""
}

func helpText(verbs, nouns []string) string {
	var b strings.Builder
	b.WriteString(locale.Get("Available commands:"))
	b.WriteString("\n")
	b.WriteString(locale.Get("Verbs:"))
	for _, v := range verbs {
		b.WriteString("\n  " + v)
	}
	b.WriteString("\n")
	b.WriteString(locale.Get("Nouns:"))
	for _, n := range nouns {
		b.WriteString("\n  " + n)
	}
	return b.String()
}

func endText(n engine.Notice) string {
	switch n.Outcome {
	case engine.Died:
		return locale.Get("Your strength gives out, %s. The End.", n.Subject)
	case engine.Charted:
		return locale.Get("Every place is charted. Well travelled, %s! The End.", n.Subject)
	case engine.Quit:
		return locale.Get("You set down your pack and rest. The End.")
	}
	return locale.Get("The End.")
}
