package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/config"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
	"github.com/johny-gastrobar/backoffice/internal/logger"
	"github.com/johny-gastrobar/backoffice/internal/router"
	"github.com/johny-gastrobar/backoffice/internal/session"
	"github.com/johny-gastrobar/backoffice/internal/ws"
)

func main() {
	// Local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	client := gastro.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	svcs := router.Services{
		Items:        gastro.NewItemService(client),
		Employees:    gastro.NewEmployeeService(client),
		Tables:       gastro.NewTableService(client),
		Reservations: gastro.NewReservationService(client),
		Orders:       gastro.NewOrderService(client),
		Payments:     gastro.NewPaymentService(client),
		Feedbacks:    gastro.NewFeedbackService(client),
		Dashboard:    gastro.NewDashboardService(client),
	}

	hub := ws.NewHub()
	go hub.Run()

	sessions := session.NewManager(svcs.Items, svcs.Tables, svcs.Employees, svcs.Orders, hub, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.New(cfg, svcs, sessions, hub, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("backend", cfg.Backend.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
