package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hajnalm/ClearPoint/internal/config"
	"github.com/hajnalm/ClearPoint/internal/httpapi"
	"github.com/hajnalm/ClearPoint/internal/observability/logging"
	"github.com/hajnalm/ClearPoint/internal/store"
	"github.com/hajnalm/ClearPoint/internal/task"
)

type ServeOptions struct {
	*RootOptions
	Addr string
}

func NewServeCommand(root *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.RootOptions, func(c *config.Config) {
				if opts.Addr != "" {
					c.Addr = opts.Addr
				}
			})
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), logging.Options{
				Level:      cfg.Log.Level,
				Format:     cfg.Log.Format,
				Timestamps: true,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg.Store)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
			}
			defer st.Close()

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Addr, err)
			}
			return serve(ctx, cfg, st, logger, ln)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// serve runs the API on ln until ctx is done, then drains in-flight requests
// for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.Config, st store.Store, logger *slog.Logger, ln net.Listener) error {
	svc := task.NewService(task.NewRepository(st))
	api := httpapi.NewServer(svc, httpapi.Options{
		Logger:         logger,
		Ready:          st,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Handler:           api,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ln.Addr().String(), "store", cfg.Store.Driver)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("bye")
	return nil
}
