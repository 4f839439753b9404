package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/api"
	"github.com/SergeyKozhin/liferabbit/internal/backend"
	"github.com/SergeyKozhin/liferabbit/internal/business/goals"
	"github.com/SergeyKozhin/liferabbit/internal/business/schedules"
	"github.com/SergeyKozhin/liferabbit/internal/config"
	"github.com/SergeyKozhin/liferabbit/internal/notifications"
	"github.com/SergeyKozhin/liferabbit/internal/session"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	return cmd
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := initLogger()
	if err != nil {
		return fmt.Errorf("unable to initialize logger: %w", err)
	}

	loc := config.Location()

	store, err := newStateStore(ctx, logger)
	if err != nil {
		return err
	}

	sess := session.New(store, logger)
	if err := sess.Start(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	client := backend.New(config.BackendURL(), sess)
	goalsService := goals.NewService(client, sess, logger)
	schedulesService := schedules.NewService(store, sess, logger, config.TagFeatureUnlocked(), loc)

	if config.DigestEnabled() {
		bot, err := notifications.NewBot(config.TelegramToken())
		if err != nil {
			return err
		}

		sender := notifications.NewSender(logger, schedulesService, sess, bot, config.TelegramChatID(), loc)
		if err := sender.Start(config.DigestSpec()); err != nil {
			return err
		}
	}

	handler := api.NewApi(logger, loc, sess, client, goalsService, schedulesService)

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		return fmt.Errorf("error initiating server logger: %w", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  handler,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Errorw("server shutdown", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port(), "backend", config.BackendURL(), "store", config.StoreDriver())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("server error", "err", err)
			closer.Exit(1)
		}
	}()

	closer.Hold()

	return nil
}
