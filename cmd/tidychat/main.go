package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tidychat/cmd/tidychat/chat"
	"tidychat/internal/config"
	"tidychat/internal/gemini"
	"tidychat/internal/logging"
	"tidychat/internal/normalize"
	"tidychat/internal/render"
	"tidychat/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string
	modelName  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tidychat",
	Short: "tidychat - terminal Gemini chat with reply cleanup",
	Long: `tidychat is a terminal chat client for the Gemini API.

Model replies are run through a normalization pass before rendering:
paste artifacts are stripped, unfenced code is detected and wrapped in
fenced blocks with a guessed language tag, and already well-formed
markdown is left untouched.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "tidychat" && cmd.CalledAs() == "tidychat" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// askCmd sends a single prompt and prints the normalized, rendered reply
var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Send one prompt and print the cleaned-up reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

// historyCmd groups transcript subcommands
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved conversations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Print one session as markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default .tidychat/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Model name override")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves config from file, env, and flags.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if modelName != "" {
		cfg.LLM.Model = modelName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the transcript database, or returns nil when disabled.
func openStore(cfg *config.Config) *store.Store {
	if !cfg.History.Enabled {
		return nil
	}
	st, err := store.Open(cfg.History.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: transcript store unavailable: %v\n", err)
		return nil
	}
	return st
}

// runInteractiveChat launches the TUI.
func runInteractiveChat() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(chat.Workspace(), logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
	}
	defer logging.Close()

	var client *gemini.Client
	if cfg.LLM.APIKey != "" {
		client, err = gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.SystemPrompt)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	return chat.Run(cfg, client, st)
}

// runAsk handles the one-shot prompt command.
func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("no API key: set GEMINI_API_KEY or use --api-key")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetLLMTimeout())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	client, err := gemini.NewClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.SystemPrompt)
	if err != nil {
		return err
	}
	defer client.Close()

	prompt := joinArgs(args)
	logger.Info("Sending prompt", zap.String("model", client.Model()))

	reply, err := client.Send(ctx, nil, prompt)
	if err != nil {
		return err
	}

	normalized := normalize.Normalize(reply)

	if st := openStore(cfg); st != nil {
		defer st.Close()
		if sess, err := st.CreateSession(prompt, client.Model()); err == nil {
			_ = st.AppendTurn(sess.ID, gemini.RoleUser, prompt)
			_ = st.AppendTurn(sess.ID, gemini.RoleModel, normalized)
		}
	}

	r, err := render.New(cfg.UI.Theme, cfg.UI.WordWrap)
	if err != nil {
		fmt.Println(normalized)
		return nil
	}
	fmt.Println(r.Render(normalized))
	return nil
}

// runHistoryList prints saved sessions.
func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := openStore(cfg)
	if st == nil {
		return fmt.Errorf("transcript history is disabled")
	}
	defer st.Close()

	sessions, err := st.ListSessions(50)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s  %s  [%s]  %s\n",
			s.ID, s.UpdatedAt.Format("2006-01-02 15:04"), s.Model, s.Title)
	}
	return nil
}

// runHistoryShow prints one session as markdown.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := openStore(cfg)
	if st == nil {
		return fmt.Errorf("transcript history is disabled")
	}
	defer st.Close()

	msgs, err := st.LoadNormalized(args[0])
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return fmt.Errorf("no such session: %s", args[0])
	}

	for _, m := range msgs {
		label := "**You**"
		if m.Role == gemini.RoleModel {
			label = "**Gemini**"
		}
		fmt.Printf("%s\n\n%s\n\n", label, m.Content)
	}
	return nil
}

func joinArgs(args []string) string {
	result := ""
	for i, arg := range args {
		if i > 0 {
			result += " "
		}
		result += arg
	}
	return result
}
