package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideamans/svgkit/pkg/config"
	"github.com/ideamans/svgkit/pkg/factory"
	"github.com/ideamans/svgkit/pkg/server"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered icons and sprites over HTTP",
	Long: `Start an HTTP server exposing the configured icon sets:

  GET /icons/<name>.svg    render one icon (optional ?class= query)
  GET /sprite/<set>.svg    sprite document for a set
  GET /health              liveness check

The configuration file is watched for changes; set and filter updates are
applied without a restart. Icon directories themselves are not watched.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Server host address (overrides config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Server port number (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	loader := config.NewFileLoader(cfgFile)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger := newLogger(cfg)

	f, err := factory.Build(cfg, logger)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reapply set and filter changes on config reload. Cache backend and
	// server address changes still require a restart.
	watcher, err := config.NewWatcher(config.WatcherConfig{
		Loader:     loader,
		ConfigPath: cfgFile,
		Logger:     logger,
		OnReload: func(newCfg *config.Config) {
			newCfg.Apply(f)
		},
	})
	if err != nil {
		return err
	}
	go watcher.Watch(ctx)

	srv := server.New(server.Config{Host: cfg.Server.Host, Port: cfg.Server.Port}, f, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
