package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/vital/internal/analysis"
	"github.com/dmitrijs2005/vital/internal/auth"
	"github.com/dmitrijs2005/vital/internal/config"
	"github.com/dmitrijs2005/vital/internal/cryptox"
	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/repositories/catalog"
	"github.com/dmitrijs2005/vital/internal/router"
	"github.com/dmitrijs2005/vital/internal/services"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// NewApp wires the client from configuration. Output goes to stdout, logs to
// log.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	a := &App{
		router: router.New(),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		role:   models.RoleDonor,
	}

	var repoOpts []catalog.Option
	if cfg.SeedCatalog {
		repoOpts = append(repoOpts, catalog.WithSeed())
	}
	repo := catalog.NewMemoryRepository(repoOpts...)

	model, err := newModel(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	analyzer := analysis.NewClient(model, cfg.AnalyzeTimeout, log.With("component", "analysis"))

	notifier := auth.MultiNotifier{
		auth.ConsoleNotifier{W: a.out},
		auth.LogNotifier{Log: log},
	}
	issuer, err := a.newIssuer(ctx, cfg, notifier)
	if err != nil {
		return nil, err
	}

	a.machine = auth.NewMachine(issuer,
		auth.WithDelays(auth.Delays{
			Submit:    cfg.SubmitDelay,
			Verify:    cfg.VerifyDelay,
			Resend:    cfg.ResendDelay,
			Federated: cfg.FederatedDelay,
		}),
		auth.WithStepTimeout(cfg.StepTimeout),
		auth.WithLogger(log.With("component", "auth")),
	)

	alerter := services.ConsoleAlerter{W: a.out}
	a.donor = services.NewDonorService(repo, analyzer, log.With("component", "donor"))
	a.receiver = services.NewReceiverService(repo, alerter, log.With("component", "receiver"))

	return a, nil
}

// newModel returns the Gemini binding, or a model that always fails when no
// API key is configured so every analysis yields the fallback.
func newModel(ctx context.Context, cfg *config.Config, log logging.Logger) (analysis.Model, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn(ctx, "no Gemini API key configured, photo analysis disabled")
		return analysis.ModelFunc(func(context.Context, analysis.Request) (string, error) {
			return "", analysis.ErrMissingAPIKey
		}), nil
	}
	return analysis.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
}

func (a *App) newIssuer(ctx context.Context, cfg *config.Config, notifier auth.Notifier) (auth.CodeIssuer, error) {
	gen := auth.RandomGenerator{}

	if cfg.CodeBackend != config.BackendRedis {
		return auth.NewLocalIssuer(gen, notifier), nil
	}

	hasher, err := cryptox.NewCodeHasher([]byte(cfg.CodeSecret))
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}

	a.closers = append(a.closers, rdb.Close)
	return auth.NewRedisIssuer(rdb, cfg.CodeTTL, hasher, gen, notifier), nil
}
