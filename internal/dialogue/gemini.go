package dialogue

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/wayfarer/internal/engine"
	"google.golang.org/api/option"
)

//go:embed prompts/npc_line.txt
var npcLinePrompt string

var npcLineTemplate = template.Must(template.New("npc_line").Parse(npcLinePrompt))

const modelName = "gemini-2.5-flash"

// Gemini asks a Gemini model to write NPC dialogue.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

// Line implements engine.DialogueWriter.
func (g *Gemini) Line(ctx context.Context, s engine.Speaker) (string, error) {
	prompt, err := renderPrompt(s)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate line for %s: %w", s.Name, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini for %s", s.Name)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini for %s", s.Name)
	}
	return cleanLine(string(text), s.Name), nil
}

func renderPrompt(s engine.Speaker) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Name     string
		Place    string
		Category string
		Roster   string
	}{
		Name:     s.Name,
		Place:    s.Place,
		Category: s.Category.String(),
		Roster:   s.Roster,
	}
	if err := npcLineTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt for %s: %w", s.Name, err)
	}
	return buf.String(), nil
}

// cleanLine strips the wrapping models like to add: code fences, quotes and
// a leading "Name:" prefix.
func cleanLine(text, name string) string {
	line := strings.TrimSpace(text)
	line = strings.TrimPrefix(line, "```text")
	line = strings.TrimPrefix(line, "```")
	line = strings.TrimSuffix(line, "```")
	line = strings.TrimSpace(line)
	if first, _, ok := strings.Cut(line, "\n"); ok {
		line = strings.TrimSpace(first)
	}
	if rest, ok := strings.CutPrefix(line, name+":"); ok {
		line = strings.TrimSpace(rest)
	}
	return strings.Trim(line, "\"“”")
}
