package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"helixd/internal/common/fsutil"
	"helixd/internal/config"
	"helixd/internal/httpapi"
	"helixd/internal/hub"
	"helixd/internal/viz"
)

func buildServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the visualization server",
		Example: "  helixd serve --addr :8000",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, configPath, logLevel)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", envOr("HELIXD_ADDR", ":8000"), "HTTP listen address, e.g. :8000")
	cmd.Flags().StringVar(&configPath, "config", envOr("HELIXD_CONFIG", ""), "Optional config file (.yaml/.json/.toml)")
	cmd.Flags().StringVar(&logLevel, "log-level", envOr("HELIXD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	return cmd
}

func runServe(addr, configPath, logLevel string) error {
	var fileCfg config.Config
	if configPath != "" {
		p, err := fsutil.ExpandHome(configPath)
		if err != nil {
			return err
		}
		if !fsutil.PathExists(p) {
			return fmt.Errorf("config file not found: %s", p)
		}
		fileCfg, err = config.Load(p)
		if err != nil {
			return err
		}
	}
	// Flags win over file values; file values win over defaults.
	if fileCfg.Addr != "" && addr == ":8000" {
		addr = fileCfg.Addr
	}
	if fileCfg.LogLevel != "" {
		logLevel = fileCfg.LogLevel
	}

	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "helixd").Logger()
	httpapi.SetLogger(logger)

	httpapi.SetMaxBodyBytes(fileCfg.MaxBodyBytes)
	httpapi.SetCORSOptions(fileCfg.CORSEnabled, fileCfg.CORSAllowedOrigins, fileCfg.CORSAllowedMethods, fileCfg.CORSAllowedHeaders)
	httpapi.SetWSOptions(fileCfg.WSSendBuffer, time.Duration(fileCfg.WSWriteTimeoutSeconds)*time.Second)

	// Base context canceled on shutdown so websocket read loops unwind too.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	state := viz.New(hub.New())
	mux := httpapi.NewMux(state)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("helixd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	logger.Info().Msg("helixd stopped")
	return nil
}
