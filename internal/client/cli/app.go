// Package cli implements the interactive terminal client.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"
	"time"

	"emojournal/internal/client/analysis"
	"emojournal/internal/client/config"
	"emojournal/internal/client/credstore"
	"emojournal/internal/client/gateway"
	"emojournal/internal/client/repositories/kv"
	"emojournal/internal/client/services"
	"emojournal/internal/client/storage"
	"emojournal/internal/client/store"
	"emojournal/internal/logging"

	backoff "github.com/cenkalti/backoff/v4"
	_ "modernc.org/sqlite"
)

// Mode reflects backend reachability as seen by the status watcher.
type Mode string

const (
	// ModeLocal means no API base is configured; everything stays local.
	ModeLocal Mode = "local"
	// ModeOnline means the backend answered the last probe.
	ModeOnline Mode = "online"
	// ModeOffline means the last probe failed; local data still works.
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	auth    *services.AuthService
	journal *services.JournalService
	creds   *credstore.Store
	probe   reachabilityProbe
	log     logging.Logger

	Mode   Mode
	reader *bufio.Reader
}

// reachabilityProbe is a test seam for the online-status watcher.
type reachabilityProbe func(ctx context.Context) error

// NewApp wires the whole client: local database, stores, gateway with the
// refresh transport, analysis client and services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)

	journalStore, err := store.New(ctx, repo)
	if err != nil {
		return nil, err
	}
	creds, err := credstore.New(ctx, db)
	if err != nil {
		return nil, err
	}

	authClient := gateway.NewAuthClient(cfg.AuthAPIBase, &http.Client{Timeout: cfg.HTTPTimeout})

	// Every journal and analysis call shares the refresh transport, so the
	// 401-refresh-retry protocol applies uniformly.
	apiHTTP := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: gateway.NewTransport(nil, creds, authClient.Refresh),
	}
	entryGateway := gateway.New(cfg.APIBase, apiHTTP)
	analyzer := analysis.New(cfg.APIBase, apiHTTP, log)

	mode := ModeLocal
	if cfg.APIBase != "" {
		mode = ModeOffline
	}

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(authClient, creds, log),
		journal: services.NewJournalService(entryGateway, journalStore, analyzer, log),
		creds:   creds,
		probe:   authClient.Reachable,
		log:     log,
		Mode:    mode,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.config.APIBase != "" {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "backend status changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the backend and flips the
// online/offline mode. A failing probe is retried a few times with
// exponential backoff before the client is declared offline. It also warns
// when the access token is close to its expiry claim.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, interval)
			err := backoff.Retry(func() error {
				return a.probe(probeCtx)
			}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), probeCtx))
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

			if exp, ok := a.creds.TokenExpiry(); ok && time.Until(exp) < interval {
				a.log.Warn(ctx, "access token expires soon", "expires_at", exp)
			}

		case <-ctx.Done():
			return
		}
	}
}
