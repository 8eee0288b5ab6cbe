package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerSelectAndArgs(t *testing.T) {
	m := newPickerModel("/app", []string{"/app/A.dll", "/app/B.dll"}, "")

	m.Update(key("down"))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m.Update(key("down"))
	if m.selected != 1 {
		t.Fatalf("selected moved past the end: %d", m.selected)
	}

	m.Update(key("enter"))
	if m.state != stateInputArgs {
		t.Fatalf("state = %v, want stateInputArgs", m.state)
	}

	m.Update(key("--flag x"))
	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.choice == nil {
		t.Fatal("no choice recorded")
	}
	if m.choice.path != "/app/B.dll" {
		t.Errorf("path = %q, want /app/B.dll", m.choice.path)
	}
	if strings.Join(m.choice.args, " ") != "--flag x" {
		t.Errorf("args = %q, want [--flag x]", m.choice.args)
	}
}

func TestPickerEscReturnsToList(t *testing.T) {
	m := newPickerModel("/app", []string{"/app/A.dll"}, "A.dll exited with code 0")

	m.Update(key("enter"))
	m.Update(key("esc"))
	if m.state != stateSelectAssembly {
		t.Fatalf("state = %v, want stateSelectAssembly", m.state)
	}
	if m.choice != nil {
		t.Error("esc must not record a choice")
	}

	view := m.View()
	if !strings.Contains(view, "A.dll exited with code 0") {
		t.Errorf("view should show the previous result:\n%s", view)
	}
}

func TestPickerQuit(t *testing.T) {
	m := newPickerModel("/app", []string{"/app/A.dll"}, "")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.choice != nil {
		t.Error("quit must not record a choice")
	}
}

func TestResolveAssembly(t *testing.T) {
	dir := t.TempDir()
	if got := resolveAssembly(dir, "/abs/App.dll"); got != "/abs/App.dll" {
		t.Errorf("absolute path changed: %q", got)
	}
	got := resolveAssembly(dir, "does-not-exist.dll")
	if !strings.HasPrefix(got, dir) {
		t.Errorf("missing relative path should resolve against app dir, got %q", got)
	}
}
