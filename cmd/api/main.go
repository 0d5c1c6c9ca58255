// @title           Task Management API
// @version         1.0
// @description     Personal task manager: JWT auth, per-user tasks, dashboard statistics.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pritish2005/task-management-app/internal/app"
	"github.com/Pritish2005/task-management-app/internal/config"
	"github.com/Pritish2005/task-management-app/internal/logger"

	_ "github.com/Pritish2005/task-management-app/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("config: %v", err)
	}
	log := logger.New(cfg.App.LogLevel)
	log.Info("config loaded, connecting to DB...")

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("HTTP server error: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	if err := application.Close(ctx); err != nil {
		panic(err)
	}
}
