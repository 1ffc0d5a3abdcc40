package engine

import "github.com/tatianab/wayfarer/internal/models"

// NoticeKind tells a renderer what a notice is about. Wording is up to the
// renderer.
type NoticeKind int

const (
	NoticeWelcome NoticeKind = iota
	NoticeMoved
	NoticeDamage
	NoticeRestoration
	NoticeImpassable
	NoticeUnknownVerb
	NoticeUnknownNoun
	NoticeInvalidInput
	NoticeDialogue
	NoticeSelfTalk
	NoticeFlee
	NoticeNothingToAttack
	NoticeHelp
	NoticeEnd
)

var noticeKindNames = map[NoticeKind]string{
	NoticeWelcome:         "welcome",
	NoticeMoved:           "moved",
	NoticeDamage:          "damage",
	NoticeRestoration:     "restoration",
	NoticeImpassable:      "impassable",
	NoticeUnknownVerb:     "unknown-verb",
	NoticeUnknownNoun:     "unknown-noun",
	NoticeInvalidInput:    "invalid-input",
	NoticeDialogue:        "dialogue",
	NoticeSelfTalk:        "self-talk",
	NoticeFlee:            "flee",
	NoticeNothingToAttack: "nothing-to-attack",
	NoticeHelp:            "help",
	NoticeEnd:             "end",
}

func (k NoticeKind) String() string {
	if s, ok := noticeKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Notice is one line-oriented piece of output produced by a turn.
type Notice struct {
	Kind NoticeKind
	// Subject is what the notice is about: the offending input, a place name
	// or an NPC name.
	Subject   string
	Text      string
	Amount    int
	Direction models.Direction
	Verbs     []string
	Nouns     []string
	Outcome   Outcome
}

// Outcome records why a session finished.
type Outcome int

const (
	Playing Outcome = iota
	Died
	Charted
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Died:
		return "died"
	case Charted:
		return "charted"
	case Quit:
		return "quit"
	}
	return "unknown"
}
