package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connected/config"
	"connected/internal/database"
	"connected/internal/render"
	"connected/internal/repository"
	"connected/internal/router"
	"connected/internal/service"
	"connected/internal/ws"
	"connected/pkg/media"
	"connected/pkg/projection"
)

func main() {
	cfg := config.Load()

	var kv repository.SnapshotKV
	if cfg.Storage.DSN != "" {
		db, err := database.NewDB(&cfg.Storage)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		kv = repository.NewStorageRepository(db)
	} else {
		log.Printf("no STORAGE_DSN configured, events will not survive restarts")
		kv = repository.NewMemoryKV()
	}

	var cloud media.Client
	if cfg.Cloudinary.CloudName != "" {
		c, err := media.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Printf("cloudinary disabled: %v", err)
		} else {
			cloud = c
		}
	}

	canvas := projection.Canvas{Width: cfg.Map.CanvasWidth, Height: cfg.Map.CanvasHeight}
	viewHub := ws.NewViewHub()
	sync := service.NewSynchronizer(
		render.NewMapRenderer(canvas),
		render.NewCalendarRenderer(),
		render.NewListRenderer(cfg.Profile.DefaultImage),
		render.NewProfileRenderer(cfg.Profile.Creator, cfg.Profile.DefaultImage, cfg.Profile.DefaultReels),
		viewHub,
	)
	repo := repository.NewEventRepository(kv, cfg.Storage.SnapshotKey)
	app := service.NewApp(cfg, repo, sync)
	app.Init()

	engine := router.Setup(cfg, app, viewHub, cloud)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
