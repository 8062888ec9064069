package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wodnd0131/kiwes-api/config"
	deps "github.com/wodnd0131/kiwes-api/internal/debs"
	api "github.com/wodnd0131/kiwes-api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go a.RunAlarmSweeper(sweepCtx)

	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	stopSweeper()
	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown failed", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
