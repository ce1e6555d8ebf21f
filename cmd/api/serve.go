package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "animals-api/internal/adapters/storage/memory"
	"animals-api/internal/platform/config"
	"animals-api/internal/platform/logger"
	"animals-api/internal/router"

	"github.com/spf13/cobra"
)

type serveFlags struct {
	addr      string
	logLevel  string
	logFormat string
	noSeed    bool
}

// apply pisa la config de env solo con los flags informados.
func (f serveFlags) apply(cfg config.Config) config.Config {
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if f.noSeed {
		cfg.Seed = false
	}
	return cfg
}

func serveCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		Long: `Levanta la API con el estado en memoria (se pierde al reiniciar).

Variables de entorno: PORT, ADDR, LOG_LEVEL, LOG_FORMAT, APP_NAME, SEED_DATA,
READ_TIMEOUT, WRITE_TIMEOUT, SHUTDOWN_TIMEOUT. Los flags tienen prioridad.

Ejemplos:
  animals-api serve
  animals-api serve --addr 127.0.0.1:9090 --log-format json
  animals-api serve --no-seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.addr, "addr", "", "dirección de escucha (host:port)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "text|json")
	cmd.Flags().BoolVar(&f.noSeed, "no-seed", false, "arrancar con colecciones vacías")

	return cmd
}

func runServe(cmd *cobra.Command, f serveFlags) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg = f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	seed := mem.Seed{}
	if cfg.Seed {
		seed = mem.DefaultSeed()
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(router.Options{Store: mem.NewStore(seed), Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting server", map[string]any{"addr": ln.Addr().String(), "seed": cfg.Seed, "version": version})
	return runServer(ctx, srv, ln, log, cfg.ShutdownTimeout)
}

// runServer sirve hasta que ctx se cancela y luego hace shutdown ordenado.
// Las mutaciones ya confirmadas no se revierten aunque la respuesta no llegue.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, log logger.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": shutdownTimeout.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
