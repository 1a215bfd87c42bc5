package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/statelab/internal/bank"
	"github.com/jask/statelab/internal/config"
	"github.com/jask/statelab/internal/i18n"
	"github.com/jask/statelab/internal/logger"
	"github.com/jask/statelab/internal/placeholder"
	"github.com/jask/statelab/internal/store"
	"github.com/jask/statelab/internal/tui"
)

var (
	configPath string
	logLevel   string
	startRoute string

	cfg config.Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "statelab",
		Short:        "Terminal playground for shared stores, a bank reducer and REST forms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				c.Log.Level = logLevel
			}
			cfg = c
			if cmd != cmd.Root() {
				logger.Init(cmd.ErrOrStderr(), logOptions())
			}
			return nil
		},
		RunE: runTUI,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/statelab/config.toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().StringVar(&startRoute, "route", "", "start route, e.g. /bankaccount")

	root.AddCommand(usersCmd(), postCmd(), bankCmd())
	return root
}

func logOptions() logger.Options {
	return logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}
}

func newClient() *placeholder.Client {
	return placeholder.New(cfg.API.BaseURL, cfg.API.Timeout)
}

func runTUI(cmd *cobra.Command, args []string) error {
	route := cfg.UI.StartRoute
	if startRoute != "" {
		route = startRoute
	}
	if _, suggestion, ok := tui.LookupRoute(route); !ok {
		return fmt.Errorf("no route %s (did you mean %s?)", route, suggestion)
	}
	mode, err := store.ParseThemeMode(cfg.UI.Theme)
	if err != nil {
		return err
	}

	closer, err := logger.InitFile(cfg.Log.Path, logOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := tui.New(ctx, tui.Deps{
		Auth:     store.NewAuth(),
		Theme:    store.NewTheme(mode),
		Language: store.NewLanguage(i18n.Match(cfg.UI.Language)),
		Teller:   bank.NewTeller(),
		API:      newClient(),
	}, tui.Options{StartRoute: route, LoginName: cfg.UI.LoginName})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	detach := app.Attach(func(m tea.Msg) { go p.Send(m) })
	defer detach()

	logger.Log.Info().Str("route", route).Str("theme", string(mode)).Msg("starting tui")
	_, err = p.Run()
	return err
}
