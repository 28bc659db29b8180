package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"safescout/internal/api"
	"safescout/internal/api/handler/v1handler"
	"safescout/internal/auth"
	"safescout/internal/config"
	"safescout/internal/jobs"
	"safescout/internal/payments"
	"safescout/internal/risk"
	"safescout/internal/worker"
	"safescout/pkg/logger"
	"safescout/pkg/paygate/intentapi"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// paymentClientTimeout bounds individual requests to the payment provider.
const paymentClientTimeout = 30 * time.Second

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			authSvc, err := auth.New(cfg, strg)
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}

			jobsSvc := jobs.New(strg, jobs.NewOptions(cfg))
			gateway := intentapi.New(&http.Client{Timeout: paymentClientTimeout}, cfg.Payment.BaseURL, cfg.Payment.APIKey)
			paymentsSvc := payments.New(strg, gateway, jobsSvc, payments.NewOptions(cfg))

			engine := risk.New(risk.NewOptions(cfg))
			riverClient, err := worker.Start(ctx, strg.Pool, engine, strg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:     authSvc,
					Jobs:     jobsSvc,
					Payments: paymentsSvc,
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
