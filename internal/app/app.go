// Package app wires configuration, storage, services and transports
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres"
	tokenrepo "github.com/shmoon-kr/gqlauth/internal/adapter/postgres/token"
	userrepo "github.com/shmoon-kr/gqlauth/internal/adapter/postgres/user"
	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/config"
	authsvc "github.com/shmoon-kr/gqlauth/internal/service/auth"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/dataloader"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/resolver"
	"github.com/shmoon-kr/gqlauth/internal/transport/middleware"
	"github.com/shmoon-kr/gqlauth/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the auth service and the GraphQL transport, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)

	svc := authsvc.NewService(
		logger,
		users,
		tokens,
		postgres.NewTxManager(pool),
		auth.NewChain(auth.NewPasswordBackend(users)),
		auth.NewJWTCodec(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		cfg.Auth,
	)

	res := resolver.NewResolver(logger, svc, tokens)
	gqlHandler := graphql.NewHandler(cfg.GraphQL, res, logger)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc),
		dataloader.Middleware(&dataloader.Repos{User: users}),
	)

	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("POST /query", chain(gqlHandler))
	mux.Handle("OPTIONS /query", chain(gqlHandler))
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /", playground.Handler("GraphQL Playground", "/query"))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
