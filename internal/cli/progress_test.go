package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/obo2owl/pkg/pipeline"
	"github.com/matzehuels/obo2owl/pkg/translate"
)

func update(t *testing.T, m batchModel, msg tea.Msg) (batchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(batchModel)
	if !ok {
		t.Fatalf("Update returned %T, want batchModel", next)
	}
	return bm, cmd
}

func TestBatchModelProgress(t *testing.T) {
	m := newBatchModel([]string{"a.obo", "b.obo"})

	m, _ = update(t, m, fileStartedMsg{path: "a.obo"})
	if m.rows[0].status != statusRunning {
		t.Errorf("a.obo status = %v, want running", m.rows[0].status)
	}

	m, _ = update(t, m, fileFinishedMsg{result: fileResult{
		Input: "a.obo",
		Result: &pipeline.Result{
			Stats:    pipeline.Stats{Components: 12},
			Warnings: []translate.Warning{{Frame: "T:9", Message: "instances are not translated"}},
		},
	}})
	m, _ = update(t, m, fileFinishedMsg{result: fileResult{Input: "b.obo", Err: fmt.Errorf("boom")}})

	done, failed := m.counts()
	if done != 1 || failed != 1 {
		t.Errorf("counts() = %d, %d, want 1, 1", done, failed)
	}

	view := m.View()
	for _, want := range []string{"a.obo", "b.obo", "12", "boom", "[2/2]", "1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestBatchModelDone(t *testing.T) {
	m := newBatchModel([]string{"a.obo"})
	m, cmd := update(t, m, batchDoneMsg{})
	if !m.finished {
		t.Error("model should be finished")
	}
	if cmd == nil {
		t.Fatal("batchDoneMsg should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("batchDoneMsg should return tea.Quit")
	}
}

func TestBatchModelAbort(t *testing.T) {
	m := newBatchModel([]string{"a.obo"})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.aborted {
		t.Error("quitting before the batch finished should mark the model aborted")
	}
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestBatchModelIgnoresUnknownFiles(t *testing.T) {
	m := newBatchModel([]string{"a.obo"})
	m, _ = update(t, m, fileStartedMsg{path: "other.obo"})
	if m.rows[0].status != statusPending {
		t.Errorf("status = %v, want pending", m.rows[0].status)
	}
}
