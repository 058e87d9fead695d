package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/masterclass/internal/server"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the masterclass web server",
	Long:  `Serves the homepage, section, topic and practice pages, the JSON API and the websocket code runner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := buildApp(cfg, logger)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		}, a.store, logger.With("component", "server"))
		a.site.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
		logger.Info("masterclass server starting",
			"version", Version,
			"url", url,
			"content", cfg.Content.Source,
			"runner", cfg.Runner.URL,
			"programs", len(a.catalog.All()),
		)
		if serveOpen {
			go openBrowser(url)
		}

		return srv.Start()
	},
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in a browser")
	rootCmd.AddCommand(serveCmd)
}
