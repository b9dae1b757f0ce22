// Package chat provides the interactive TUI chat interface for tidychat.
package chat

import (
	"fmt"
	"os"
	"time"

	"tidychat/cmd/tidychat/ui"
	"tidychat/internal/config"
	"tidychat/internal/gemini"
	"tidychat/internal/logging"
	"tidychat/internal/render"
	"tidychat/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 1
	footerHeight = 1
	inputHeight  = 3
)

// Messages for tea updates
type (
	responseMsg     string
	errorMsg        error
	copyFlashExpiry struct{}
)

// Model is the main model for the interactive chat interface.
type Model struct {
	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *render.Renderer

	// State
	history   []gemini.Message
	isLoading bool
	copied    bool
	err       error
	width     int
	height    int
	ready     bool

	// Backend
	cfg     *config.Config
	client  *gemini.Client
	store   *store.Store
	session *store.Session

	log *logging.Logger
}

// InitChat builds the chat model from configuration. The Gemini client and
// the transcript store may each be nil: the UI still runs and reports the
// problem as an assistant message instead of refusing to start.
func InitChat(cfg *config.Config, client *gemini.Client, st *store.Store) Model {
	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))

	ta := textarea.New()
	ta.Placeholder = "Ask me anything... (Enter to send, Ctrl+C to exit)"
	ta.Focus()
	ta.Prompt = "| "
	ta.CharLimit = 4096
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	vp.SetContent("")

	renderer, err := render.New(cfg.UI.Theme, wrapWidth(cfg, 80))
	if err != nil {
		renderer = nil // Render falls back to plain text
	}

	m := Model{
		textarea: ta,
		viewport: vp,
		spinner:  sp,
		styles:   styles,
		renderer: renderer,
		cfg:      cfg,
		client:   client,
		store:    st,
		log:      logging.Get(logging.CategoryUI),
	}

	if client == nil {
		m.history = append(m.history, gemini.Message{
			Role:    gemini.RoleModel,
			Content: "No API key detected. Set `GEMINI_API_KEY` or add `llm.api_key` to " + config.DefaultPath() + ".",
		})
	}

	return m
}

// wrapWidth returns the configured word wrap, or fallback when unset.
func wrapWidth(cfg *config.Config, fallback int) int {
	if cfg.UI.WordWrap > 0 {
		return cfg.UI.WordWrap
	}
	return fallback
}

// Init starts the blink and spinner tickers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// startSession lazily creates a persisted session on the first exchange.
func (m *Model) startSession(firstPrompt string) {
	if m.store == nil || m.session != nil || !m.cfg.History.Enabled {
		return
	}
	title := firstPrompt
	if len(title) > 64 {
		title = title[:64]
	}
	sess, err := m.store.CreateSession(title, m.cfg.LLM.Model)
	if err != nil {
		m.log.Error("failed to create session: %v", err)
		return
	}
	m.session = sess
}

// persistTurn records one message, best-effort.
func (m *Model) persistTurn(role, content string) {
	if m.store == nil || m.session == nil {
		return
	}
	if err := m.store.AppendTurn(m.session.ID, role, content); err != nil {
		m.log.Error("failed to persist turn: %v", err)
	}
}

// lastReply returns the most recent model message, if any.
func (m Model) lastReply() (string, bool) {
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Role == gemini.RoleModel {
			return m.history[i].Content, true
		}
	}
	return "", false
}

// Run starts the interactive chat session.
func Run(cfg *config.Config, client *gemini.Client, st *store.Store) error {
	model := InitChat(cfg, client, st)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI failed: %w", err)
	}
	return nil
}

// Workspace returns the directory transcripts and logs live under.
func Workspace() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// copyFlashDuration is how long the "copied" indicator stays visible.
const copyFlashDuration = 2 * time.Second
