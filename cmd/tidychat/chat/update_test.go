package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	result := newModel.(Model)

	if result.width != 120 {
		t.Errorf("Expected width 120, got %d", result.width)
	}
	if result.height != 40 {
		t.Errorf("Expected height 40, got %d", result.height)
	}
	if !result.ready {
		t.Error("Expected ready after first window size")
	}
}

func TestUpdate_WindowSize_TinyTerminal(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	// Should not panic or go negative on tiny dimensions
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 5, Height: 2})
	result := newModel.(Model)

	if result.viewport.Height < 3 {
		t.Errorf("viewport height clamped wrong: %d", result.viewport.Height)
	}
}

func TestUpdate_ResponseAppendsToHistory(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.isLoading = true
	m.history = append(m.history, userMessage("question"))

	newModel, _ := m.Update(responseMsg("**done**"))
	result := newModel.(Model)

	if result.isLoading {
		t.Error("Expected loading cleared after response")
	}
	last := result.history[len(result.history)-1]
	if last.Content != "**done**" {
		t.Errorf("Expected reply appended, got %q", last.Content)
	}
}

func TestUpdate_ErrorShownNotAppended(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.isLoading = true
	before := len(m.history)

	newModel, _ := m.Update(errorMsg(errors.New("rate limited")))
	result := newModel.(Model)

	if result.isLoading {
		t.Error("Expected loading cleared after error")
	}
	if result.err == nil {
		t.Error("Expected error stored for footer display")
	}
	if len(result.history) != before {
		t.Error("Errors must not enter the transcript")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	t.Parallel()
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewTestModel()
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("Expected quit command for %v", key)
		}
	}
}

func TestHandleSubmit_EmptyInputIgnored(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	newModel, cmd := m.handleSubmit()
	result := newModel.(Model)

	if cmd != nil || result.isLoading {
		t.Error("Empty input should not trigger a request")
	}
}

func TestHandleSubmit_NoClientDoesNotLoad(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.textarea.SetValue("hello")

	newModel, _ := m.handleSubmit()
	result := newModel.(Model)

	if result.isLoading {
		t.Error("Submission without a client must not enter loading state")
	}
}

func TestHandleCommand_Help(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.textarea.SetValue("/help")

	newModel, _ := m.handleSubmit()
	result := newModel.(Model)

	if len(result.history) == 0 {
		t.Fatal("Expected help message in history")
	}
	if !strings.Contains(result.history[len(result.history)-1].Content, "/new") {
		t.Error("Help should list commands")
	}
}

func TestHandleCommand_NewClearsConversation(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.history = append(m.history, userMessage("q"), modelMessage("a"))
	m.textarea.SetValue("/new")

	newModel, _ := m.handleSubmit()
	result := newModel.(Model)

	if len(result.history) != 0 {
		t.Errorf("Expected empty history, got %d messages", len(result.history))
	}
	if result.session != nil {
		t.Error("Expected session reset")
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.textarea.SetValue("/frobnicate")

	newModel, _ := m.handleSubmit()
	result := newModel.(Model)

	last := result.history[len(result.history)-1]
	if !strings.Contains(last.Content, "/help") {
		t.Errorf("Unknown command should point at /help, got %q", last.Content)
	}
}

func TestCopyFlashExpiry(t *testing.T) {
	t.Parallel()
	m := NewTestModel()
	m.copied = true

	newModel, _ := m.Update(copyFlashExpiry{})
	result := newModel.(Model)

	if result.copied {
		t.Error("Expected copied flag cleared")
	}
}

func TestLastReply(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	if _, ok := m.lastReply(); ok {
		t.Error("Expected no reply in empty history")
	}

	m.history = append(m.history, userMessage("q1"), modelMessage("a1"), userMessage("q2"))

	reply, ok := m.lastReply()
	if !ok || reply != "a1" {
		t.Errorf("Expected a1, got %q (ok=%v)", reply, ok)
	}
}
