package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/repara-cli/internal/adapters/api/rest"
	"github.com/bnema/repara-cli/internal/adapters/notify"
	tomlrepo "github.com/bnema/repara-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/repara-cli/internal/adapters/storage/chain"
	filestore "github.com/bnema/repara-cli/internal/adapters/storage/file"
	"github.com/bnema/repara-cli/internal/application"
	"github.com/bnema/repara-cli/internal/config"
	"github.com/bnema/repara-cli/internal/domain"
	"github.com/bnema/repara-cli/internal/logging"
	"github.com/bnema/repara-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagAPIURL   = "api-url"
	flagAuthURL  = "auth-url"
	flagOffline  = "offline"
	flagJSON     = "json"
	flagLogLevel = "log-level"
)

var flagKeys = map[string]string{
	flagAPIURL:   config.KeyAPIBaseURL,
	flagAuthURL:  config.KeyAPIAuthURL,
	flagOffline:  config.KeyOffline,
	flagJSON:     config.KeyOutputJSON,
	flagLogLevel: config.KeyLogLevel,
}

// runtime is filled by the root command once flags are parsed.
type runtime struct {
	app *app
}

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	api      rest.Client
	catalog  ports.CatalogAPI
	sessions *application.SessionService
	facade   *application.Facade
	monitor  *application.Monitor
	clock    ports.Clock
	// sink receives every notice the facade emits. watch swaps it for the
	// TUI channel before starting.
	sink ports.Notifier
}

func (rt *runtime) init(cmd *cobra.Command) error {
	v, err := config.New(config.Options{})
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a, err := wireApp(cmd, v, cfg)
	if err != nil {
		return err
	}
	rt.app = a
	return nil
}

func (rt *runtime) close() {
	if rt.app != nil {
		_ = rt.app.logger.Sync()
	}
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func wireApp(cmd *cobra.Command, v *viper.Viper, cfg config.Config) (*app, error) {
	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	clock := ports.SystemClock{}
	httpClient := &http.Client{}

	cache, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire tickets cache: %w", err)
	}

	auth := rest.AuthClient{
		BaseURL:        cfg.API.AuthURL,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.API.RequestTimeout,
		Logger:         logger.Named("auth"),
	}
	store, err := sessionStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}
	sessions := application.NewSessionService(store, auth, clock, logger.Named("session"), cfg.Session.MaxAge)

	api := rest.Client{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.API.RequestTimeout,
		Token:          sessions.Token,
		Logger:         logger.Named("api"),
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		api:      api,
		catalog:  api,
		sessions: sessions,
		clock:    clock,
		sink: notify.Multi{
			notify.NewWriter(cmd.ErrOrStderr()),
			notify.Log{Logger: logger.Named("notice")},
		},
	}

	forward := ports.NotifierFunc(func(n domain.Notice) { a.sink.Notify(n) })
	a.facade = application.NewFacade(api, cache, sessions, forward, clock, logger.Named("facade"))
	a.monitor = application.NewMonitor(a.facade, api, logger.Named("monitor"), application.MonitorOptions{
		Interval:      cfg.Monitor.Interval,
		HealthTimeout: cfg.API.HealthTimeout,
	})

	sessions.Load(cmd.Context())

	return a, nil
}

func sessionStore(cfg config.StorageConfig) (ports.KeyValueStore, error) {
	if cfg.Backend == config.StorageBackendPass {
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir)
	}
	return filestore.NewStore(cfg.Dir), nil
}

// connect runs the initial probe, or forces offline mode when configured.
func (a *app) connect(cmd *cobra.Command) application.Result {
	ctx := cmd.Context()
	if a.cfg.Offline {
		return a.monitor.ForceOffline(ctx)
	}
	if a.cfg.JSON {
		return a.monitor.Start(ctx)
	}

	var (
		result  application.Result
		started bool
	)
	err := runConnectSpinner(ctx, cmd.ErrOrStderr(), func(ctx context.Context) error {
		result = a.monitor.Start(ctx)
		started = true
		return nil
	})
	if err != nil {
		a.logger.Debug("connect spinner", zap.Error(err))
	}
	if !started {
		result = a.monitor.Start(ctx)
	}
	return result
}

func (a *app) now() time.Time {
	return a.clock.Now()
}
