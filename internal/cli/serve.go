package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/swatches/internal/app"
	"github.com/emiliopalmerini/swatches/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web studio",
	Long: `Start the htmx web studio.

Examples:
  swatches serve                  # Listen on SWATCHES_ADDR (default :8080)
  swatches serve --addr :3000     # Listen on port 3000
  swatches serve --slots 7        # Seven swatches per palette`,
	RunE: runServe,
}

var (
	serveAddr  string
	serveSlots int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Address to listen on")
	serveCmd.Flags().IntVar(&serveSlots, "slots", 0, "Number of swatches")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveSlots > 0 {
		cfg.Slots = serveSlots
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}()

	if err := a.Studio.Start(ctx); err != nil {
		log.Warn("initial palette incomplete", zap.Error(err))
	}

	srv := web.NewHTTPServer(cfg.Addr, web.NewServer(a.Studio, log.Named("web")))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
