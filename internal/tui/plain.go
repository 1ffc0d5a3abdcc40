package tui

import (
	"fmt"
	"io"

	"github.com/tatianab/wayfarer/internal/engine"
)

// PlainRenderer writes the game as plain lines, for terminals without the
// full-screen UI and for piped input.
type PlainRenderer struct {
	w io.Writer
}

func NewPlainRenderer(w io.Writer) *PlainRenderer {
	return &PlainRenderer{w: w}
}

// RenderState implements engine.Renderer.
func (r *PlainRenderer) RenderState(e *engine.Engine) {
	fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", RenderMap(e), RenderStats(e), locale.Get("What do you want to do?"))
}

// RenderNotices implements engine.Renderer.
func (r *PlainRenderer) RenderNotices(notices []engine.Notice) {
	for _, n := range notices {
		fmt.Fprintln(r.w, RenderNotice(n, 0))
	}
}
