package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Renderer shows the game to the player.
type Renderer interface {
	RenderState(e *Engine)
	RenderNotices(notices []Notice)
}

// Run plays the session over a line-oriented input until it finishes or the
// input ends. Cancellation is checked between turns. Lines have no length
// limit and may end in "\n" or "\r\n".
func (e *Engine) Run(ctx context.Context, in io.Reader, r Renderer) error {
	r.RenderNotices(e.Intro())

	reader := bufio.NewReader(in)
	for !e.finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.RenderState(e)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		if line != "" {
			r.RenderNotices(e.ProcessTurn(trimLineEnding(line)))
		}
		if err != nil {
			e.log.Printf("input closed after %d turns", e.turns)
			return nil
		}
	}
	return nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
