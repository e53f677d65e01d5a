package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered portfolio with live reload",
	Long: `Starts an HTTP server that renders the page from the current content
document on every request. With --watch, changes to the content document,
the page shell, or the static directory reload the content and refresh
connected browsers.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("watch", false, "reload when inputs change (defaults to server.watch)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Server.Watch, _ = cmd.Flags().GetBool("watch")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := newLoader(cfg, logger)
	store := site.NewStore(loader, cfg.Site.Shell, site.WithStoreLogger(logger))
	if err := store.Load(ctx); err != nil {
		// Serve the unfilled shell; a watched fix will load later.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	srv := server.New(server.Config{
		Port:       cfg.Server.Port,
		StaticDir:  cfg.Site.StaticDir,
		AllowAll:   cfg.Server.AllowAll,
		LiveReload: cfg.Server.LiveReload && cfg.Server.Watch,
	}, store, server.WithLogger(logger))

	if cfg.Server.Watch {
		watchCfg := site.WatchConfig{
			ShellPath: cfg.Site.Shell,
			StaticDir: cfg.Site.StaticDir,
			Exclude:   append(append([]string(nil), cfg.Site.Exclude...), cfg.Site.OutputDir, cfg.Site.OutputDir+"/**"),
			Debounce:  cfg.Server.Debounce,
		}
		if !loader.IsRemote() {
			watchCfg.ContentPath = loader.Source()
		}
		watcher, err := site.NewWatcher(store, watchCfg, site.WithWatchLogger(logger))
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("file watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Serving portfolio at %s (press Ctrl+C to stop)\n", url)

	return srv.Start()
}
