package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yusufkecer/bmi-analyzer/internal/config"
	"github.com/yusufkecer/bmi-analyzer/internal/handler"
	"github.com/yusufkecer/bmi-analyzer/internal/router"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
	"github.com/yusufkecer/bmi-analyzer/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	var avatarFiles fs.FS = web.Avatars()
	if cfg.AvatarDir != "" {
		avatarFiles = os.DirFS(cfg.AvatarDir)
	}
	avatars := service.NewAvatarService(avatarFiles)
	// Missing avatars degrade the analyzer page rather than stopping the server.
	if err := avatars.Check(); err != nil {
		log.Printf("[avatar] %v", err)
	}

	r := router.New(router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		CalcRateLimit:  cfg.CalcRateLimit,
		CalcRateWindow: cfg.CalcRateWindow,
	}, tmpl, avatars, handler.NewValidator())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
