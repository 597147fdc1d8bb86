// Package cli implements the shellprompt command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/opencode-ai/shellprompt/internal/command"
	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/opencode-ai/shellprompt/internal/logging"
	"github.com/opencode-ai/shellprompt/internal/modules"
	"github.com/opencode-ai/shellprompt/internal/prompt"
	"github.com/opencode-ai/shellprompt/internal/style"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath string
	logLevel   string
	colorMode  string

	appConfig *config.Config
	logger    = zerolog.Nop()

	// terminalFunc is replaced in tests.
	terminalFunc = hasTerminal
)

var rootCmd = &cobra.Command{
	Use:           "shellprompt",
	Short:         "Render a shell prompt",
	Long:          "shellprompt prints a shell prompt assembled from modules such as directory, php and character.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shellprompt/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color mode override: auto, always, never")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(logOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(logOut, level)
	appConfig = cfg

	logger.Debug().Str("format", cfg.Format).Str("color", cfg.Color).Msg("config loaded")
	return nil
}

func newPromptRenderer(out io.Writer) (*prompt.Renderer, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	profile, err := style.ProfileFor(cfg.Color, terminalFunc())
	if err != nil {
		return nil, err
	}

	styles := style.NewRenderer(out, profile)
	executor := command.NewLocalExecutor(cfg.CommandTimeout, logger)
	return prompt.NewRenderer(cfg, modules.Default(), executor, styles, logger), nil
}

func newRequest(path string, status int) (prompt.Request, error) {
	dir := path
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return prompt.Request{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return prompt.Request{}, fmt.Errorf("resolve %s: %w", dir, err)
	}

	home, _ := os.UserHomeDir()
	return prompt.Request{Dir: abs, Home: home, Status: status}, nil
}

// The prompt is captured by the shell, so stdout is never a terminal here.
// stderr still points at the user's terminal.
func hasTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
