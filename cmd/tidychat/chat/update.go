package chat

import (
	"context"
	"strings"
	"time"

	"tidychat/internal/gemini"
	"tidychat/internal/normalize"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleSubmit()

		case tea.KeyCtrlY:
			return m.handleCopy()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		chatHeight := m.height - headerHeight - footerHeight - inputHeight
		if chatHeight < 3 {
			chatHeight = 3
		}
		m.viewport.Width = m.width
		m.viewport.Height = chatHeight
		m.textarea.SetWidth(m.width - 2)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case responseMsg:
		m.isLoading = false
		m.err = nil
		m.history = append(m.history, gemini.Message{Role: gemini.RoleModel, Content: string(msg)})
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.err = msg
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case copyFlashExpiry:
		m.copied = false
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" || m.isLoading {
		return m, nil
	}

	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	if m.client == nil {
		return m, nil
	}

	m.startSession(input)
	m.persistTurn(gemini.RoleUser, input)

	// Snapshot history before appending: Send adds the prompt itself.
	prior := m.history
	m.history = append(m.history, gemini.Message{Role: gemini.RoleUser, Content: input})

	m.textarea.Reset()
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	m.isLoading = true
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.processInput(prior, input))
}

// processInput sends the prompt, normalizes the reply, and persists both.
// Runs as a tea command off the UI goroutine.
func (m Model) processInput(history []gemini.Message, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.GetLLMTimeout())
		defer cancel()

		reply, err := m.client.Send(ctx, history, input)
		if err != nil {
			return errorMsg(err)
		}

		normalized := normalize.Normalize(reply)
		m.persistTurn(gemini.RoleModel, normalized)

		return responseMsg(normalized)
	}
}

func (m Model) handleCopy() (tea.Model, tea.Cmd) {
	reply, ok := m.lastReply()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(reply); err != nil {
		m.log.Error("clipboard write failed: %v", err)
		return m, nil
	}

	m.copied = true
	return m, tea.Tick(copyFlashDuration, func(time.Time) tea.Msg {
		return copyFlashExpiry{}
	})
}

func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/new":
		m.history = nil
		m.session = nil
		m.err = nil
		m.textarea.Reset()
		m.viewport.SetContent(m.renderHistory())
		return m, nil

	case "/help":
		m.history = append(m.history, gemini.Message{
			Role: gemini.RoleModel,
			Content: strings.Join([]string{
				"**Commands**",
				"",
				"- `/new` start a fresh conversation",
				"- `/quit` exit",
				"- `Ctrl+Y` copy the last reply",
			}, "\n"),
		})
		m.textarea.Reset()
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	default:
		m.history = append(m.history, gemini.Message{
			Role:    gemini.RoleModel,
			Content: "Unknown command. Try `/help`.",
		})
		m.textarea.Reset()
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil
	}
}
