package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"ewintr.nl/ytcatalog/config"
	"ewintr.nl/ytcatalog/handler"
	"ewintr.nl/ytcatalog/storage"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

type closingRepository interface {
	storage.ProjectRepository
	Close() error
}

func openRepository(ctx context.Context) (closingRepository, error) {
	switch conf.StorageDriver {
	case config.DriverSQLite:
		return storage.NewSQLite(ctx, conf.SQLitePath)
	default:
		return storage.NewPostgres(ctx, conf.Postgres)
	}
}

func serve(ctx context.Context) error {
	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("unable to open %s storage: %w", conf.StorageDriver, err)
	}
	defer repo.Close()
	logger.Info("storage opened", slog.String("driver", conf.StorageDriver))

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", conf.APIPort))
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	srv := &http.Server{
		Handler:           handler.NewServer(repo, logger),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	logger.Info("http server started", slog.String("address", listener.Addr().String()))

	select {
	case err := <-serveErr:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("unable to shut down http server", slog.String("error", err.Error()))
	}
	logger.Info("service stopped")

	return nil
}
