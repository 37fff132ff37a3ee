package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb, cmd
}

func TestScoreboardTabClosesEmbedded(t *testing.T) {
	m := newEmbeddedScoreboard(nil, "sacrifice", "Sacrifice Runner", 100, 30)

	m, cmd := updateBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.IsGoingBack() {
		t.Error("tab should close the embedded table")
	}
	if cmd != nil {
		t.Error("embedded table must not quit the program")
	}
}

func TestScoreboardBackQuitsStandalone(t *testing.T) {
	m := NewScoreboardModel(nil, "sacrifice", "Sacrifice Runner", 100, 30)

	m, cmd := updateBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should end a standalone table")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := newEmbeddedScoreboard(nil, "sacrifice", "Sacrifice Runner", 100, 30)

	m, _ = updateBoard(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardViewSingleGame(t *testing.T) {
	m := newEmbeddedScoreboard(nil, "sacrifice", "Sacrifice Runner", 100, 30)
	view := m.View()

	if !strings.Contains(view, "HIGH SCORES - Sacrifice Runner") {
		t.Error("title missing from view")
	}
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("empty table message missing")
	}
	for _, unwanted := range []string{"Games", "next game", "prev game"} {
		if strings.Contains(view, unwanted) {
			t.Errorf("view should not contain %q", unwanted)
		}
	}
	if !strings.Contains(view, "back") {
		t.Error("help bar should advertise back")
	}
}

func TestScoreboardLoadsStoredRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{40, 90} {
		run := storage.NewRunRecord("sacrifice", score, core.RunStats{Frames: score * 2, Sacrifices: 1})
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	if _, err := store.SaveRun(storage.NewRunRecord("other", 500, core.RunStats{})); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, "sacrifice", "Sacrifice Runner", 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 90 {
		t.Fatalf("scores = %+v, expected 90 then 40", m.scores)
	}
	if line := m.statsLine(); !strings.Contains(line, "runs 2") || !strings.Contains(line, "best 90") {
		t.Errorf("stats line = %q", line)
	}
}

func TestScoreboardResizeKeepsScores(t *testing.T) {
	m := NewScoreboardModel(nil, "sacrifice", "Sacrifice Runner", 100, 30)

	m, _ = updateBoard(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.width != 40 || m.height != 12 {
		t.Errorf("size = %dx%d, expected 40x12", m.width, m.height)
	}
	if m.IsGoingBack() || m.IsQuitting() {
		t.Error("resize must not close the table")
	}
}
