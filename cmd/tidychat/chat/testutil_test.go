package chat

import (
	"tidychat/cmd/tidychat/ui"
	"tidychat/internal/config"
	"tidychat/internal/gemini"
	"tidychat/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// NewTestModel creates a minimal Model suitable for testing.
// No Gemini client and no store: submission paths that need them no-op.
func NewTestModel() Model {
	ta := textarea.New()
	ta.Placeholder = "Test input..."
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(80, 20)

	return Model{
		textarea: ta,
		viewport: vp,
		spinner:  sp,
		styles:   ui.NewStyles(ui.DarkTheme()),
		cfg:      config.DefaultConfig(),
		log:      logging.Get(logging.CategoryUI),
	}
}

func modelMessage(content string) gemini.Message {
	return gemini.Message{Role: gemini.RoleModel, Content: content}
}

func userMessage(content string) gemini.Message {
	return gemini.Message{Role: gemini.RoleUser, Content: content}
}
