package models

// Vocabulary lists the verbs and nouns shown by the help command. It is for
// display only; commands are not validated against it.
type Vocabulary struct {
	Verbs []string `yaml:"verbs"`
	Nouns []string `yaml:"nouns"`
}

// RosterEntry names an NPC and the line it says when spoken to.
type RosterEntry struct {
	Name     string `yaml:"name"`
	Dialogue string `yaml:"dialogue"`
}

// Roster is the pool NPC names and dialogue are taken from.
type Roster struct {
	NPCs []RosterEntry `yaml:"npcs"`
}

// Entry returns the i-th roster entry, or a numbered placeholder once the
// roster runs out.
func (r Roster) Entry(i int) RosterEntry {
	if i < len(r.NPCs) {
		return r.NPCs[i]
	}
	return RosterEntry{Name: npcName(i)}
}

// Lookup finds the entry with the given name.
func (r Roster) Lookup(name string) (RosterEntry, bool) {
	for _, e := range r.NPCs {
		if e.Name == name {
			return e, true
		}
	}
	return RosterEntry{}, false
}
