package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/core"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Environment from .env takes part in config overrides
	config.LoadDotenv()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Create context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := core.Setup(ctx, cfg)
	if err != nil {
		log.Fatal("Error setting up services:", err)
	}

	if err := app.Registry.StartAll(ctx); err != nil {
		log.Fatal("Error starting services:", err)
	}

	<-ctx.Done()
	log.Println("Received shutdown signal, stopping services...")
	app.Registry.StopAll()
}
