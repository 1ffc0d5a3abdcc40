package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/tatianab/wayfarer/internal/models"
)

// scriptedSource replays fixed samples. Once a queue runs dry it returns
// samples that produce plain places at index 0.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0] % n
	s.ints = s.ints[1:]
	return i
}

// plain are the float samples for one plain place.
var plain = []float64{0.9, 0.9, 0.9}

func draws(cells ...[]float64) []float64 {
	var out []float64
	for _, c := range cells {
		out = append(out, c...)
	}
	return out
}

var (
	helpful   = []float64{0.1}
	dangerous = []float64{0.9, 0.1}
	neutral   = []float64{0.9, 0.9, 0.1}
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestEngine(t *testing.T, width, height int, src RandomSource) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), Options{
		Width:      width,
		Height:     height,
		PlayerName: "Tester",
		Vocabulary: models.Vocabulary{Verbs: []string{"move", "quit"}, Nouns: []string{"north"}},
		Random:     src,
		Logger:     quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestGenerateShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, tc := range []struct{ w, h int }{{1, 1}, {3, 2}, {9, 9}} {
		g, err := Generate(tc.w, tc.h, rng)
		if err != nil {
			t.Fatalf("Generate(%d, %d): %v", tc.w, tc.h, err)
		}
		count := 0
		g.Each(func(x, y int, p *models.Place) { count++ })
		if count != tc.w*tc.h {
			t.Errorf("Expected %d places, got %d", tc.w*tc.h, count)
		}
		start, err := g.CellAt(tc.w/2, tc.h/2)
		if err != nil {
			t.Fatal(err)
		}
		if start.Category() != models.Start || !start.Charted() {
			t.Errorf("Expected charted start place at centre, got %s", start.Category())
		}
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	_, err := Generate(0, 4, &scriptedSource{})
	if !errors.Is(err, models.ErrInvalidDimensions) {
		t.Fatalf("Expected ErrInvalidDimensions, got %v", err)
	}
	_, err = NewEngine(context.Background(), Options{Width: 3, Height: -1, Random: &scriptedSource{}, Logger: quietLogger()})
	if !errors.Is(err, models.ErrInvalidDimensions) {
		t.Fatalf("Expected NewEngine to surface ErrInvalidDimensions, got %v", err)
	}
}

func TestGenerateThresholds(t *testing.T) {
	src := &scriptedSource{
		floats: draws(helpful, dangerous, neutral, plain),
		ints:   []int{4, 2, 1, 5, 3, 2, 8},
	}
	g, err := Generate(4, 1, src)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		category  models.Category
		biome     string
		attribute string
	}{
		{models.Helpful, "Forest", "Sacred"},
		{models.Dangerous, "Mountains", "Shadow"},
		// (2, 0) is replaced by the start place.
		{models.Start, "Camp", ""},
		{models.Plain, "Valley", ""},
	}
	for x, w := range want {
		p, _ := g.CellAt(x, 0)
		if p.Category() != w.category || p.Biome != w.biome || p.Attribute != w.attribute {
			t.Errorf("Cell %d: expected %s %q %q, got %s %q %q",
				x, w.category, w.biome, w.attribute, p.Category(), p.Biome, p.Attribute)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _ := Generate(6, 5, rand.New(rand.NewSource(42)))
	b, _ := Generate(6, 5, rand.New(rand.NewSource(42)))
	a.Each(func(x, y int, p *models.Place) {
		q, _ := b.CellAt(x, y)
		if p.Name() != q.Name() || p.Category() != q.Category() {
			t.Errorf("Cell (%d, %d) differs: %s vs %s", x, y, p, q)
		}
	})
}

func TestGenerateFrequencies(t *testing.T) {
	g, err := Generate(200, 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	counts := map[models.Category]int{}
	g.Each(func(x, y int, p *models.Place) { counts[p.Category()]++ })

	total := float64(200 * 200)
	for _, tc := range []struct {
		category models.Category
		want     float64
	}{
		{models.Helpful, 0.25},
		{models.Dangerous, 0.1875},
		{models.Neutral, 0.140625},
		{models.Plain, 0.421875},
	} {
		got := float64(counts[tc.category]) / total
		if got < tc.want-0.02 || got > tc.want+0.02 {
			t.Errorf("Expected %s frequency near %.3f, got %.3f", tc.category, tc.want, got)
		}
	}
}

func TestNewEngineChartsStartNeighbours(t *testing.T) {
	e := newTestEngine(t, 5, 5, &scriptedSource{})
	if e.Player().Pos != (models.Position{X: 2, Y: 2}) {
		t.Fatalf("Expected player at start, got %v", e.Player().Pos)
	}
	if e.Player().Vitality != models.StartingVitality {
		t.Errorf("Expected vitality %d, got %d", models.StartingVitality, e.Player().Vitality)
	}
	if e.CurrentPlace() != e.Grid().StartPlace() {
		t.Error("Expected current place to be the start place")
	}
	if got := e.Grid().ChartedCount(); got != 5 {
		t.Errorf("Expected 5 charted places, got %d", got)
	}
	if e.Finished() {
		t.Error("Expected a 5x5 session to be running")
	}
}

func TestSingleCellSessionIsFinished(t *testing.T) {
	e := newTestEngine(t, 1, 1, &scriptedSource{})
	if !e.Finished() || e.Outcome() != Charted {
		t.Fatalf("Expected finished charted session, got finished=%v outcome=%s", e.Finished(), e.Outcome())
	}
	intro := e.Intro()
	if last := intro[len(intro)-1]; last.Kind != NoticeEnd {
		t.Errorf("Expected intro to end with an end notice, got %s", last.Kind)
	}
	if notices := e.ProcessTurn("move north"); notices != nil {
		t.Errorf("Expected finished session to ignore input, got %v", notices)
	}
}

func kinds(notices []Notice) []NoticeKind {
	var out []NoticeKind
	for _, n := range notices {
		out = append(out, n.Kind)
	}
	return out
}

func hasKind(notices []Notice, k NoticeKind) bool {
	for _, n := range notices {
		if n.Kind == k {
			return true
		}
	}
	return false
}

func TestPlaceEffects(t *testing.T) {
	// 5x1: start at (2, 0), dangerous at (3, 0), helpful at (4, 0).
	src := &scriptedSource{floats: draws(plain, plain, plain, dangerous, helpful)}
	e := newTestEngine(t, 5, 1, src)
	v := e.Player().Vitality

	notices := e.ProcessTurn("move east")
	if got := e.Player().Vitality; got != v-3 {
		t.Errorf("Expected vitality %d after dangerous place, got %d", v-3, got)
	}
	if !hasKind(notices, NoticeDamage) {
		t.Errorf("Expected damage notice, got %v", kinds(notices))
	}

	notices = e.ProcessTurn("d")
	if !hasKind(notices, NoticeInvalidInput) {
		t.Errorf("Expected invalid input notice, got %v", kinds(notices))
	}

	notices = e.ProcessTurn("go d")
	if got := e.Player().Vitality; got != v-3+1 {
		t.Errorf("Expected vitality %d after helpful place, got %d", v-2, got)
	}
	if !hasKind(notices, NoticeRestoration) {
		t.Errorf("Expected restoration notice, got %v", kinds(notices))
	}

	// Blocked by the edge: nothing changes, not even a repeated effect.
	notices = e.ProcessTurn("m east")
	if !hasKind(notices, NoticeImpassable) {
		t.Errorf("Expected impassable notice, got %v", kinds(notices))
	}
	if got := e.Player().Vitality; got != v-2 {
		t.Errorf("Expected vitality to stay %d, got %d", v-2, got)
	}
}

func TestDeathEndsSession(t *testing.T) {
	// Every place but the start is dangerous.
	cells := make([][]float64, 0, 12)
	for i := 0; i < 12; i++ {
		cells = append(cells, dangerous)
	}
	e := newTestEngine(t, 3, 4, &scriptedSource{floats: draws(cells...)})

	// The start (1, 2) is safe; four dangerous landings cost 12 vitality.
	moves := []string{"move south", "move west", "move north", "move north"}
	var last []Notice
	for _, m := range moves {
		last = e.ProcessTurn(m)
		if e.Finished() {
			break
		}
	}
	if !e.Finished() || e.Outcome() != Died {
		t.Fatalf("Expected death, got finished=%v outcome=%s vitality=%d", e.Finished(), e.Outcome(), e.Player().Vitality)
	}
	if end := last[len(last)-1]; end.Kind != NoticeEnd || end.Outcome != Died {
		t.Errorf("Expected final end notice with outcome died, got %+v", end)
	}
}

func TestChartingEndsSession(t *testing.T) {
	e := newTestEngine(t, 3, 1, &scriptedSource{})
	// 3x1: the start charts both neighbours, so the world is charted at once.
	if !e.Finished() || e.Outcome() != Charted {
		t.Fatalf("Expected charted session, got %s", e.Outcome())
	}

	e = newTestEngine(t, 5, 1, &scriptedSource{})
	e.ProcessTurn("move west")
	if e.Finished() {
		t.Fatal("Expected session to continue with (4, 0) uncharted")
	}
	e.ProcessTurn("move east")
	notices := e.ProcessTurn("move east")
	if !e.Finished() || e.Outcome() != Charted {
		t.Fatalf("Expected charted session, got %s", e.Outcome())
	}
	if !hasKind(notices, NoticeEnd) {
		t.Errorf("Expected end notice, got %v", kinds(notices))
	}
}

func TestQuit(t *testing.T) {
	e := newTestEngine(t, 5, 5, &scriptedSource{})
	notices := e.ProcessTurn("quit")
	if !e.Finished() || e.Outcome() != Quit {
		t.Fatalf("Expected quit, got finished=%v outcome=%s", e.Finished(), e.Outcome())
	}
	if len(notices) != 1 || notices[0].Kind != NoticeEnd {
		t.Errorf("Expected only an end notice, got %v", kinds(notices))
	}
	if e.ProcessTurn("move north") != nil || e.Player().Pos != e.Grid().Start {
		t.Error("Expected no further turn after quit")
	}
	if e.Turns() != 1 {
		t.Errorf("Expected 1 turn, got %d", e.Turns())
	}
}

func TestHelp(t *testing.T) {
	e := newTestEngine(t, 5, 5, &scriptedSource{})
	notices := e.ProcessTurn("help")
	if len(notices) != 1 || notices[0].Kind != NoticeHelp {
		t.Fatalf("Expected help notice, got %v", kinds(notices))
	}
	if strings.Join(notices[0].Verbs, ",") != "move,quit" || strings.Join(notices[0].Nouns, ",") != "north" {
		t.Errorf("Expected vocabulary in help notice, got %v %v", notices[0].Verbs, notices[0].Nouns)
	}
}

func TestInputErrorsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		line string
		kind NoticeKind
	}{
		{"fly north", NoticeUnknownVerb},
		{"Move north", NoticeUnknownVerb},
		{"move up", NoticeUnknownNoun},
		{"move North", NoticeUnknownNoun},
		{"move north ", NoticeUnknownNoun},
		{"north", NoticeInvalidInput},
		{"", NoticeInvalidInput},
		{"HELP", NoticeInvalidInput},
	}
	for _, tc := range tests {
		e := newTestEngine(t, 5, 5, &scriptedSource{})
		before := e.Grid().ChartedCount()

		notices := e.ProcessTurn(tc.line)
		if len(notices) != 1 || notices[0].Kind != tc.kind {
			t.Errorf("%q: expected %s, got %v", tc.line, tc.kind, kinds(notices))
		}
		if e.Player().Pos != e.Grid().Start || e.Player().Vitality != models.StartingVitality {
			t.Errorf("%q: player changed: %+v", tc.line, e.Player())
		}
		if e.Grid().ChartedCount() != before || e.Finished() {
			t.Errorf("%q: grid or session changed", tc.line)
		}
	}
}

func TestUnknownVerbSubject(t *testing.T) {
	e := newTestEngine(t, 5, 5, &scriptedSource{})
	notices := e.ProcessTurn("fly north")
	if notices[0].Subject != "fly" {
		t.Errorf("Expected subject fly, got %q", notices[0].Subject)
	}
}

func TestMoveChartsAround(t *testing.T) {
	e := newTestEngine(t, 5, 5, &scriptedSource{})
	e.ProcessTurn("move north")
	want := models.Position{X: 2, Y: 1}
	if e.Player().Pos != want {
		t.Fatalf("Expected player at %v, got %v", want, e.Player().Pos)
	}
	for _, p := range []models.Position{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}} {
		place, _ := e.Grid().CellAt(p.X, p.Y)
		if !place.Charted() {
			t.Errorf("Expected %v to be charted", p)
		}
	}
	if place, _ := e.Grid().CellAt(1, 0); place.Charted() {
		t.Error("Diagonal (1, 0) should stay uncharted")
	}
}

// placeNPC moves the i-th NPC to pos, keeping occupant sets in step.
func placeNPC(e *Engine, i int, pos models.Position) {
	npc := e.npcs[i]
	e.PlaceOf(npc.Actor).RemoveOccupant(npc.ID)
	npc.Pos = pos
	e.PlaceOf(npc.Actor).AddOccupant(npc.ID)
}

func newEngineWithNPCs(t *testing.T, width, height int, roster models.Roster, writer DialogueWriter) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), Options{
		Width:    width,
		Height:   height,
		NPCCount: len(roster.NPCs),
		Roster:   roster,
		Random:   rand.New(rand.NewSource(3)),
		Dialogue: writer,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

var testRoster = models.Roster{NPCs: []models.RosterEntry{
	{Name: "Oda", Dialogue: "The river bends east."},
	{Name: "Brannoc", Dialogue: "Mind the fire."},
}}

func TestSpawnNPCs(t *testing.T) {
	e := newEngineWithNPCs(t, 6, 4, testRoster, nil)
	npcs := e.NPCs()
	if len(npcs) != 2 {
		t.Fatalf("Expected 2 NPCs, got %d", len(npcs))
	}
	for i, n := range npcs {
		if n.Name != testRoster.NPCs[i].Name || n.Dialogue != testRoster.NPCs[i].Dialogue {
			t.Errorf("NPC %d: expected %+v, got %s %q", i, testRoster.NPCs[i], n.Name, n.Dialogue)
		}
		if !e.Grid().InBounds(n.Pos.X, n.Pos.Y) {
			t.Errorf("NPC %s out of bounds at %v", n.Name, n.Pos)
		}
		if !e.PlaceOf(n.Actor).HasOccupant(n.ID) {
			t.Errorf("NPC %s missing from its place's occupants", n.Name)
		}
	}
}

func TestTalk(t *testing.T) {
	e := newEngineWithNPCs(t, 5, 5, testRoster, nil)
	placeNPC(e, 0, e.Grid().Start)
	placeNPC(e, 1, models.Position{X: 0, Y: 0})

	notices := e.ProcessTurn("talk Oda")
	if len(notices) != 1 || notices[0].Kind != NoticeDialogue || notices[0].Text != "The river bends east." {
		t.Errorf("Expected Oda's dialogue, got %+v", notices)
	}

	notices = e.ProcessTurn("talkTo Brannoc")
	if len(notices) != 1 || notices[0].Kind != NoticeSelfTalk {
		t.Errorf("Expected self-talk notice, got %v", kinds(notices))
	}

	for _, line := range []string{"talk Nobody", "talk oda", "talk Oda "} {
		if notices := e.ProcessTurn(line); len(notices) != 0 {
			t.Errorf("%q: expected no output, got %v", line, kinds(notices))
		}
	}
}

func TestAttackFleesSouth(t *testing.T) {
	e := newEngineWithNPCs(t, 5, 5, testRoster, nil)
	start := e.Grid().Start
	placeNPC(e, 0, start)
	from := e.CurrentPlace()

	notices := e.ProcessTurn("attack Oda")
	if len(notices) != 1 || notices[0].Kind != NoticeFlee || notices[0].Direction != models.South {
		t.Fatalf("Expected flee south notice, got %+v", notices)
	}
	oda := e.NPCs()[0]
	want := models.Position{X: start.X, Y: start.Y + 1}
	if oda.Pos != want {
		t.Errorf("Expected Oda at %v, got %v", want, oda.Pos)
	}
	if from.HasOccupant(oda.ID) {
		t.Error("Expected Oda removed from the start place")
	}
	if to, _ := e.Grid().CellAt(want.X, want.Y); !to.HasOccupant(oda.ID) {
		t.Error("Expected Oda added to the place south of the start")
	}
}

func TestAttackFleesNorthAtSouthEdge(t *testing.T) {
	e := newEngineWithNPCs(t, 3, 3, testRoster, nil)
	e.ProcessTurn("move south")
	here := e.Player().Pos
	placeNPC(e, 1, here)

	e.ProcessTurn("attack Brannoc")
	brannoc := e.NPCs()[1]
	want := models.Position{X: here.X, Y: here.Y - 1}
	if brannoc.Pos != want {
		t.Fatalf("Expected Brannoc at %v, got %v", want, brannoc.Pos)
	}
	if to, _ := e.Grid().CellAt(want.X, want.Y); !to.HasOccupant(brannoc.ID) {
		t.Error("Expected Brannoc added to the place north")
	}
}

func TestAttackWithoutTarget(t *testing.T) {
	e := newEngineWithNPCs(t, 5, 5, testRoster, nil)
	placeNPC(e, 0, models.Position{X: 0, Y: 0})
	placeNPC(e, 1, e.Grid().Start)

	for _, line := range []string{"attack Oda", "attack Ghost"} {
		notices := e.ProcessTurn(line)
		if len(notices) != 1 || notices[0].Kind != NoticeNothingToAttack {
			t.Errorf("%q: expected nothing-to-attack notice, got %v", line, kinds(notices))
		}
	}
	if e.NPCs()[0].Pos != (models.Position{X: 0, Y: 0}) || e.NPCs()[1].Pos != e.Grid().Start {
		t.Error("Expected NPCs to stay put")
	}
}

func TestAttackSingleRowStaysPut(t *testing.T) {
	e := newEngineWithNPCs(t, 5, 1, testRoster, nil)
	placeNPC(e, 0, e.Grid().Start)

	notices := e.ProcessTurn("attack Oda")
	if len(notices) != 1 || notices[0].Kind != NoticeFlee || notices[0].Direction != 0 {
		t.Fatalf("Expected flee notice without direction, got %+v", notices)
	}
	if !e.CurrentPlace().HasOccupant(e.NPCs()[0].ID) {
		t.Error("Expected Oda to stay on the only row")
	}
}

type fakeWriter struct {
	lines map[string]string
	err   error
	seen  []Speaker
}

func (f *fakeWriter) Line(ctx context.Context, s Speaker) (string, error) {
	f.seen = append(f.seen, s)
	if f.err != nil {
		return "", f.err
	}
	return f.lines[s.Name], nil
}

func TestDialogueWriter(t *testing.T) {
	w := &fakeWriter{lines: map[string]string{"Oda": "Generated hello."}}
	e := newEngineWithNPCs(t, 5, 5, testRoster, w)

	npcs := e.NPCs()
	if npcs[0].Dialogue != "Generated hello." {
		t.Errorf("Expected generated dialogue, got %q", npcs[0].Dialogue)
	}
	if npcs[1].Dialogue != "Mind the fire." {
		t.Errorf("Expected roster fallback for empty line, got %q", npcs[1].Dialogue)
	}
	if len(w.seen) != 2 || w.seen[0].Roster != "The river bends east." || w.seen[0].Place == "" {
		t.Errorf("Unexpected speakers: %+v", w.seen)
	}

	failing := &fakeWriter{err: errors.New("quota exceeded")}
	e = newEngineWithNPCs(t, 5, 5, testRoster, failing)
	if got := e.NPCs()[0].Dialogue; got != "The river bends east." {
		t.Errorf("Expected roster fallback on writer error, got %q", got)
	}
}

func TestDialogueCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine(ctx, Options{
		Width: 3, Height: 3, NPCCount: 1,
		Random:   &scriptedSource{},
		Dialogue: &fakeWriter{},
		Logger:   quietLogger(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestNewEngineRequiresRandom(t *testing.T) {
	if _, err := NewEngine(context.Background(), Options{Width: 3, Height: 3}); err == nil {
		t.Error("Expected error without a random source")
	}
	if _, err := NewEngine(context.Background(), Options{Width: 3, Height: 3, NPCCount: -1, Random: &scriptedSource{}}); err == nil {
		t.Error("Expected error for negative npc count")
	}
}

func TestNewRandom(t *testing.T) {
	_, seed, err := NewRandom(0)
	if err != nil {
		t.Fatalf("NewRandom: %v", err)
	}
	a, s1, _ := NewRandom(seed)
	b, s2, _ := NewRandom(seed)
	if s1 != seed || s2 != seed {
		t.Errorf("Expected seed %d to be kept, got %d and %d", seed, s1, s2)
	}
	if a.Int63() != b.Int63() {
		t.Error("Expected equal seeds to give equal sequences")
	}
}

func TestZeroRulesGiveAPlainWorld(t *testing.T) {
	e, err := NewEngine(context.Background(), Options{
		Width:  5,
		Height: 5,
		Random: rand.New(rand.NewSource(11)),
		Rules:  &GenerationRules{},
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.Grid().Each(func(x, y int, p *models.Place) {
		if c := p.Category(); c != models.Plain && c != models.Start {
			t.Errorf("Cell (%d, %d): expected plain, got %s", x, y, c)
		}
	})
}

func TestNilRulesUseDefaults(t *testing.T) {
	src := &scriptedSource{floats: draws(helpful)}
	e := newTestEngine(t, 3, 3, src)
	p, err := e.Grid().CellAt(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Category() != models.Helpful {
		t.Errorf("Expected default rules to make (0, 0) helpful, got %s", p.Category())
	}
}
