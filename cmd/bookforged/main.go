// Command bookforged serves the book preview rendering API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/Anilcodes01/bookforge"
	"github.com/Anilcodes01/bookforge/internal/api"
	"github.com/Anilcodes01/bookforge/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownGrace bounds in-flight renders during shutdown.
const shutdownGrace = 30 * time.Second

func main() {
	flags := pflag.NewFlagSet("bookforged", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to YAML config file")
	showVersion := flags.BoolP("version", "v", false, "print version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(Version)
		return
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Printf))

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	factory := func() (*bookforge.Service, error) {
		return bookforge.New(
			bookforge.WithCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret),
			bookforge.WithUploadFolder(cfg.UploadFolder),
			bookforge.WithBrowserBin(cfg.BrowserBin),
			bookforge.WithTemplateDir(cfg.TemplateDir),
			bookforge.WithTimeouts(
				time.Duration(cfg.NavTimeoutSec)*time.Second,
				time.Duration(cfg.PDFTimeoutSec)*time.Second,
			),
		)
	}

	poolSize := bookforge.ResolvePoolSize(cfg.Workers)
	pool := bookforge.NewServicePool(poolSize, factory)
	defer func() {
		if err := pool.Close(); err != nil {
			log.Printf("closing renderer pool: %v", err)
		}
	}()
	log.Printf("renderer pool size: %d", poolSize)

	handler := api.NewHandler(api.NewPoolRenderer(pool), cfg.Debug)
	router := api.NewRouter(handler, cfg.Debug)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("bookforged %s listening on :%s", Version, cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
