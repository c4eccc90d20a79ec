package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/portal-credits/internal/adapters/browser"
	"github.com/bnema/portal-credits/internal/adapters/prompt"
	historyrender "github.com/bnema/portal-credits/internal/adapters/render/history"
	"github.com/bnema/portal-credits/internal/adapters/repo/jsonlog"
	tomlrepo "github.com/bnema/portal-credits/internal/adapters/repo/toml"
	"github.com/bnema/portal-credits/internal/application"
	"github.com/bnema/portal-credits/internal/config"
	"github.com/bnema/portal-credits/internal/logging"
	"github.com/bnema/portal-credits/internal/ports"
)

type rootOptions struct {
	configFile string
	debug      bool
}

type wireFunc func(cmd *cobra.Command, opts rootOptions) (*app, error)

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	collector       *application.Collector
	profiles        *application.ProfileService
	history         *application.HistoryService
	historyRenderer func([]application.PortalSummary, historyrender.RenderOptions) (string, error)
	now             func() time.Time
}

// cli builds the app on first use so flags are parsed before config loads.
type cli struct {
	wire wireFunc
	opts rootOptions
	app  *app
}

func (c *cli) load(cmd *cobra.Command) (*app, error) {
	if c.app != nil {
		return c.app, nil
	}

	built, err := c.wire(cmd, c.opts)
	if err != nil {
		return nil, err
	}
	c.app = built
	return built, nil
}

func wireApp(cmd *cobra.Command, opts rootOptions) (*app, error) {
	cfg, logger, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	operator := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	sessions := browser.NewProvider(browser.Config{
		ExecPath:   cfg.Browser.ExecPath,
		IdleWait:   cfg.Browser.IdleWait,
		ProfileDir: cfg.ProfileDir,
	}, operator, logger)

	return newApp(cfg, logger, sessions)
}

func loadConfig(cmd *cobra.Command, opts rootOptions) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(viper.New(), opts.configFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.Debug = true
	}

	return cfg, logging.New(cmd.ErrOrStderr(), cfg.Debug), nil
}

func newApp(cfg config.Config, logger *slog.Logger, sessions ports.SessionProvider) (*app, error) {
	readings, err := jsonlog.NewLog(cfg.LogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("wire credits log: %w", err)
	}

	profiles, err := tomlrepo.NewRepository(cfg.ProfilesRegistry)
	if err != nil {
		return nil, fmt.Errorf("wire profile registry: %w", err)
	}

	clock := ports.SystemClock{}
	profileService := application.NewProfileService(sessions, profiles, cfg, clock)
	return &app{
		cfg:             cfg,
		logger:          logger,
		collector:       application.NewCollector(sessions, readings, profileService, cfg, clock, logger),
		profiles:        profileService,
		history:         application.NewHistoryService(readings),
		historyRenderer: historyrender.Render,
		now:             time.Now,
	}, nil
}
