package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/config"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/handler"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
	pkglog "github.com/weiawesome/wes-io-live/ulid-udf/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *config.Config, fn *udf.Function) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ulid() function over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return Serve(ctx, fmt.Sprintf("%s:%d", host, port), NewRouter(fn, cfg.Batch.MaxRows))
		},
	}
	cmd.Flags().String("host", cfg.Server.Host, "Listen host")
	cmd.Flags().Int("port", cfg.Server.Port, "Listen port")
	return cmd
}

// NewRouter builds the Gin engine with logging, recovery, health and the
// ulid routes.
func NewRouter(fn *udf.Function, maxRows int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(pkglog.L()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.NewHandler(fn, maxRows).RegisterRoutes(r)
	return r
}

// Serve runs h on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler) error {
	logger := pkglog.L()
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info().Msg("http server stopped")
	return nil
}
