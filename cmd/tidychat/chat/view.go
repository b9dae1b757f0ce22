package chat

import (
	"strings"

	"tidychat/internal/gemini"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("tidychat")
	model := m.styles.Muted.Render(m.cfg.LLM.Model)
	return title + " " + model
}

func (m Model) renderInput() string {
	if m.isLoading {
		return m.styles.Content.Render(m.spinner.View() + " thinking...")
	}
	return m.styles.Content.Render(m.textarea.View())
}

func (m Model) renderFooter() string {
	if m.err != nil {
		return m.styles.Error.Render("error: " + m.err.Error())
	}
	hints := "Enter send | Ctrl+Y copy | /help commands | Ctrl+C quit"
	if m.copied {
		hints = "copied to clipboard"
		return m.styles.Success.Render(" " + hints)
	}
	return m.styles.Footer.Render(hints)
}

func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.history {
		switch msg.Role {
		case gemini.RoleUser:
			userStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Primary).
				MarginTop(1)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Content))
			sb.WriteString("\n")

		default: // model
			assistantStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Accent).
				MarginTop(1)
			sb.WriteString(assistantStyle.Render("Gemini") + "\n")
			sb.WriteString(m.renderer.Render(msg.Content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
