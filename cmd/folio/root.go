package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/prefs"
	"folio/internal/relay"
	"folio/internal/telemetry"
	"folio/internal/theme"
	"folio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	route   string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal portfolio in the terminal",
	Long: `folio renders a developer portfolio as a full-screen terminal app:
home, about, skills, projects, experience and a contact form that
delivers messages through a hosted mail relay.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&route, "route", "/", "page to open on start")
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		logPath = ""
	}
	logger, err := logging.New(logging.Options{Path: logPath, Level: cfg.Log.Level, Verbose: verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logger.Debug("tracer shutdown", zap.Error(err))
		}
	}()

	var store theme.Store
	if dir, err := cfg.StateDir(); err != nil {
		logger.Warn("no state directory; theme kept in memory", zap.Error(err))
	} else {
		s, err := prefs.Open(dir)
		if err != nil {
			logger.Warn("preferences unreadable; starting fresh", zap.Error(err))
		}
		store = s
	}
	themes := theme.New(store, fallbackTheme(cfg.UI.DefaultTheme), logger)

	client := relay.New(relay.Config{
		Endpoint:      cfg.Relay.Endpoint,
		ServiceID:     cfg.Relay.ServiceID,
		TemplateID:    cfg.Relay.TemplateID,
		PublicKey:     cfg.Relay.PublicKey,
		Timeout:       cfg.Relay.Timeout,
		RatePerMinute: cfg.Relay.RatePerMinute,
	}, relay.WithTracer(tp.Tracer("folio/relay")), relay.WithLogger(logger))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app := ui.NewAppModel(ui.AppOptions{
		Env: ui.Env{
			Ctx:    ctx,
			Theme:  themes,
			Relay:  client,
			Logger: logger,
		},
		Route:      route,
		Breakpoint: cfg.UI.Breakpoint,
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	logger.Info("starting", zap.String("route", route), zap.Stringer("theme", themes.Get()))
	if _, err := tea.NewProgram(app.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// fallbackTheme is the configured default, or a guess from the terminal background.
func fallbackTheme(configured string) theme.Mode {
	if m, ok := theme.Parse(configured); ok {
		return m
	}
	if lipgloss.HasDarkBackground() {
		return theme.Dark
	}
	return theme.Light
}
