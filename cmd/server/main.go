package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catreq-service/internal/config"
	"github.com/light-bringer/catreq-service/internal/services"
	transport "github.com/light-bringer/catreq-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	logger.WithFields(logrus.Fields{
		"spanner_db": cfg.SpannerDB,
		"http_addr":  cfg.HTTPAddr,
	}).Info("starting catalog change-request service")

	serviceOpts, err := services.NewServiceOptions(ctx, cfg.SpannerDB, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: transport.NewRouter(serviceOpts.RequestHandler, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}
