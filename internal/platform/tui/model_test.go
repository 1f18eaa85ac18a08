package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets int
	fired  int
	state  core.GameState
	audio  core.AudioSink
	seeds  []int64
	sizes  [][2]int
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if in.Has(core.ActionFire) {
		g.fired++
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) SetAudio(sink core.AudioSink) { g.audio = sink }

func (g *stubGame) Resize(width, height int) {
	g.sizes = append(g.sizes, [2]int{width, height})
}

func (g *stubGame) Progress() string { return fmt.Sprintf("round %d", g.resets) }

type countingSink struct {
	stops int
}

func (s *countingSink) Play(core.Sound) {}
func (s *countingSink) Stop(core.Sound) { s.stops++ }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func tick() TickMsg { return TickMsg(time.Now()) }

func TestModelWiresAudio(t *testing.T) {
	game := &stubGame{}
	sink := &countingSink{}
	NewModel(game, testConfig(), Options{Audio: sink})

	if game.audio != sink {
		t.Error("expected the model to hand its audio sink to the game")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	if game.resets != 1 || game.seeds[0] != 7 {
		t.Fatalf("Init should reset once with the configured seed, got %d resets %v", game.resets, game.seeds)
	}

	m, _ = send(t, m, runeKey(' '))
	m, cmd := send(t, m, tick())
	if game.fired != 1 {
		t.Errorf("fired = %d, expected 1", game.fired)
	}
	if cmd == nil {
		t.Error("expected tick loop to continue")
	}

	// Input is cleared after each tick
	send(t, m, tick())
	if game.fired != 1 {
		t.Errorf("fired = %d after an empty tick, expected 1", game.fired)
	}
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		wantQuit bool
	}{
		{"standalone quits program", false, true},
		{"embedded hands back control", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &stubGame{}
			sink := &countingSink{}
			m := NewModel(game, testConfig(), Options{Audio: sink, Embedded: tt.embedded})
			m.Init()

			esc := tea.KeyMsg{Type: tea.KeyEsc}
			m, _ = send(t, m, esc)
			m, _ = send(t, m, tick())
			if !m.State().Paused {
				t.Fatal("expected first Back to pause the game")
			}
			if m.BackToMenu() {
				t.Fatal("first Back should not leave the game")
			}

			m, cmd := send(t, m, esc)
			if !m.BackToMenu() {
				t.Fatal("expected Back while paused to leave the game")
			}
			if (cmd != nil) != tt.wantQuit {
				t.Errorf("cmd = %v, expected quit command %v", cmd, tt.wantQuit)
			}
			if sink.stops != 1 {
				t.Errorf("ambient stops = %d, expected 1", sink.stops)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), Options{})
	m, cmd := send(t, m, runeKey('q'))

	if !m.IsQuitting() || cmd == nil {
		t.Error("expected q to quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestModelSavesScoreOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "alice"})
	m.Init()

	game.state = core.GameState{Score: 120, GameOver: true}
	m, _ = send(t, m, tick())
	m, _ = send(t, m, tick())

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 120 || scores[0].Detail != "round 1" {
		t.Errorf("saved %+v, expected alice with 120 in round 1", scores[0])
	}

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, tick())
	if game.resets != 2 {
		t.Errorf("resets = %d, expected restart to reset the game", game.resets)
	}
	if m.State().GameOver {
		t.Error("expected a fresh game after restart")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	m, _ = send(t, m, runeKey('r'))
	send(t, m, tick())
	if game.resets != 1 {
		t.Errorf("resets = %d, expected restart to wait for game over", game.resets)
	}
}

func TestModelResizeKeepsRunningGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()
	game.state.Score = 50
	m, _ = send(t, m, tick())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if len(game.sizes) != 0 {
		t.Errorf("same size should not notify the game, got %v", game.sizes)
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resets != 1 {
		t.Errorf("resets = %d, expected resize to keep the run", game.resets)
	}
	if len(game.sizes) != 1 || game.sizes[0] != [2]int{60, 20} {
		t.Errorf("sizes = %v, expected one resize to 60x20", game.sizes)
	}
	if m.State().Score != 50 {
		t.Errorf("score = %d after resize, expected 50", m.State().Score)
	}
	if got := m.View(); !strings.Contains(got, "stub") || strings.Count(got, "\n") < 19 {
		t.Error("expected the game to render into the resized view")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{Player: "bob"})

	if !strings.Contains(s.View(), "Welcome, bob") {
		t.Error("expected menu to greet the player")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("expected Enter to start the selected game")
	}
	if cmd == nil {
		t.Error("expected the game tick loop to start")
	}

	esc := tea.KeyMsg{Type: tea.KeyEsc}
	next, _ = s.Update(esc)
	s = next.(SessionModel)
	next, _ = s.Update(tick())
	s = next.(SessionModel)
	next, _ = s.Update(esc)
	s = next.(SessionModel)

	if s.InGame() {
		t.Error("expected Back while paused to return to the menu")
	}

	next, cmd = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if cmd == nil || s.View() != "" {
		t.Error("expected q on the menu to end the session")
	}
}
