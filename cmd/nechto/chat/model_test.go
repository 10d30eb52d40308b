package chat

import (
	"strings"
	"testing"

	"nechto/internal/config"
	"nechto/internal/engine"
	"nechto/internal/language"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ent, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	m := NewModel(ent, config.Default())

	// Simulate the initial window size so the viewport exists.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestModel_DialogueTurnAppendsTranscript(t *testing.T) {
	m := newTestModel(t)
	before := len(m.transcript)

	updated, _ := m.handleLine("Are you conscious?")
	m = updated.(Model)

	if len(m.transcript) != before+1 {
		t.Fatalf("transcript blocks = %d, want %d", len(m.transcript), before+1)
	}
	if m.entity.State().Cycle() != 1 {
		t.Fatalf("cycle = %d, want 1", m.entity.State().Cycle())
	}
	if !strings.Contains(m.transcript[len(m.transcript)-1], "consciousness") {
		t.Error("turn block missing response type tag")
	}
}

func TestModel_LangCommand(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.handleCommand("/lang ru")
	m = updated.(Model)
	if m.hint != language.HintRU {
		t.Fatalf("hint = %q, want ru", m.hint)
	}

	updated, _ = m.handleCommand("/lang nonsense")
	m = updated.(Model)
	if m.hint != language.HintAuto {
		t.Fatalf("hint = %q, want auto (degraded)", m.hint)
	}
}

func TestModel_QuitCommand(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.handleCommand("/quit")
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command did not produce tea.QuitMsg")
	}
}

func TestModel_ReportCommandsDoNotMutate(t *testing.T) {
	m := newTestModel(t)
	for _, c := range []string{"/iam", "/whoami", "/snapshot", "/help", "/bogus"} {
		updated, _ := m.handleCommand(c)
		m = updated.(Model)
	}
	if m.entity.State().Cycle() != 0 {
		t.Fatalf("commands mutated cycle: %d", m.entity.State().Cycle())
	}
}

func TestReportMarkdown_ContainsLayers(t *testing.T) {
	ent, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}
	md := reportMarkdown(ent.IAm())
	for _, section := range []string{"# Я ЕСМЬ", "## Observed", "## Inferred", "## Untestable", "## Affirmations", "## Negations", "**MU**"} {
		if !strings.Contains(md, section) {
			t.Errorf("report markdown missing %q", section)
		}
	}
}

func TestIdentityMarkdown_ContainsAnswer(t *testing.T) {
	ent, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}
	md := identityMarkdown(ent.WhoAmI())
	if !strings.Contains(md, "position of observation with operational patterns") {
		t.Error("identity markdown missing the answer line")
	}
	if !strings.Contains(md, "## Relational") {
		t.Error("identity markdown missing relational section")
	}
}
