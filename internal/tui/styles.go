package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/wayfarer/internal/engine"
	"github.com/tatianab/wayfarer/internal/models"
)

// Palette shared by notices and the map.
var (
	colorText    = lipgloss.Color("#FFFFFF")
	colorMuted   = lipgloss.Color("#AAAAAA")
	colorFaint   = lipgloss.Color("#444444")
	colorAccent  = lipgloss.Color("#FFA500")
	colorDanger  = lipgloss.Color("#FF5F5F")
	colorHelpful = lipgloss.Color("#5FD75F")
	colorNeutral = lipgloss.Color("#87AFD7")
	colorSpeech  = lipgloss.Color("#87D7FF")
	colorNPC     = lipgloss.Color("#D787FF")
	colorWarning = lipgloss.Color("#FFAF00")
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle    = lipgloss.NewStyle().Foreground(colorText)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	dangerStyle  = lipgloss.NewStyle().Foreground(colorDanger)
	helpfulStyle = lipgloss.NewStyle().Foreground(colorHelpful)
	speechStyle  = lipgloss.NewStyle().Foreground(colorSpeech)
	npcStyle     = lipgloss.NewStyle().Foreground(colorNPC)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(colorMuted)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)
)

// noticeStyles keeps every notice kind visually distinct.
var noticeStyles = map[engine.NoticeKind]lipgloss.Style{
	engine.NoticeWelcome:         gameStyle.Bold(true),
	engine.NoticeMoved:           gameStyle,
	engine.NoticeDamage:          dangerStyle.Bold(true),
	engine.NoticeRestoration:     helpfulStyle.Bold(true),
	engine.NoticeImpassable:      helpStyle.Italic(false),
	engine.NoticeUnknownVerb:     warningStyle,
	engine.NoticeUnknownNoun:     warningStyle.Underline(true),
	engine.NoticeInvalidInput:    warningStyle.Bold(true),
	engine.NoticeDialogue:        speechStyle,
	engine.NoticeSelfTalk:        speechStyle.Italic(true),
	engine.NoticeFlee:            npcStyle,
	engine.NoticeNothingToAttack: npcStyle.Italic(true),
	engine.NoticeHelp:            helpStyle,
	engine.NoticeEnd:             titleStyle,
}

func styleFor(k engine.NoticeKind) lipgloss.Style {
	if s, ok := noticeStyles[k]; ok {
		return s
	}
	return gameStyle
}

// RenderNotice words and styles a notice, wrapping at width when positive.
func RenderNotice(n engine.Notice, width int) string {
	style := styleFor(n.Kind)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(NoticeText(n))
}

var glyphs = map[models.Category]string{
	models.Plain:     lipgloss.NewStyle().Foreground(colorMuted).Render("."),
	models.Dangerous: dangerStyle.Render("!"),
	models.Helpful:   helpfulStyle.Render("+"),
	models.Neutral:   lipgloss.NewStyle().Foreground(colorNeutral).Render("~"),
	models.Start:     lipgloss.NewStyle().Foreground(colorAccent).Render("o"),
}

var (
	playerGlyph    = gameStyle.Bold(true).Render("@")
	npcGlyph       = npcStyle.Render("&")
	unchartedGlyph = lipgloss.NewStyle().Foreground(colorFaint).Render("?")
)

// RenderMap draws the grid as the player knows it: uncharted places are
// hidden, charted ones show their category.
func RenderMap(e *engine.Engine) string {
	g := e.Grid()
	player := e.Player().Pos

	var b strings.Builder
	g.Each(func(x, y int, p *models.Place) {
		switch {
		case x == player.X && y == player.Y:
			b.WriteString(playerGlyph)
		case !p.Charted():
			b.WriteString(unchartedGlyph)
		case p.Occupied():
			b.WriteString(npcGlyph)
		default:
			b.WriteString(glyphs[p.Category()])
		}
		if x == g.Width-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	})
	return b.String()
}

// RenderStats summarises the player and where they stand.
func RenderStats(e *engine.Engine) string {
	p := e.Player()
	g := e.Grid()
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		p.Name,
		locale.Get("Vitality: %d", p.Vitality),
		locale.Get("Charted: %d/%d", g.ChartedCount(), g.Width*g.Height),
		locale.Get("Location: %s", e.CurrentPlace().Name()),
	)
}
