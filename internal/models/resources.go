package models

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/vocabulary.yaml
var defaultVocabulary []byte

//go:embed defaults/roster.yaml
var defaultRoster []byte

func npcName(i int) string {
	return fmt.Sprintf("npc%d", i)
}

// LoadVocabulary reads the vocabulary from path, or the built-in one when
// path is empty.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := readResource(path, defaultVocabulary)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("load vocabulary: %w", err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary %q: %w", path, err)
	}
	return v, nil
}

// LoadRoster reads the NPC roster from path, or the built-in one when path
// is empty.
func LoadRoster(path string) (Roster, error) {
	data, err := readResource(path, defaultRoster)
	if err != nil {
		return Roster{}, fmt.Errorf("load roster: %w", err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parse roster %q: %w", path, err)
	}
	for i, e := range r.NPCs {
		if e.Name == "" {
			return Roster{}, fmt.Errorf("roster %q: npcs[%d]: name is empty", path, i)
		}
	}
	return r, nil
}

func readResource(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}
