package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"student-management-api/config"
	"student-management-api/controller"
	"student-management-api/service"
	"student-management-api/store"
	"student-management-api/util"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

// bootstrap loads the config, builds the logger and connects the store.
func bootstrap(ctx context.Context, opts *RootOptions) (*config.Config, *zap.Logger, *store.Store, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := util.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}
	return cfg, logger, st, nil
}

func runServe(ctx context.Context, opts *RootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, st, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting", zap.Int("port", cfg.Server.Port), zap.String("log_level", cfg.Log.Level))

	if err := st.EnsureIndexes(ctx); err != nil {
		logger.Error("index creation failed", zap.Error(err))
		_ = st.Close(context.Background())
		return err
	}

	svc := service.NewService(cfg, service.FromStore(st), logger, service.Options{})
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           controller.NewRouter(svc, cfg.CORS.AllowOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			_ = st.Close(context.Background())
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Error("store close failed", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}
