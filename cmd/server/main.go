package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lovesurprise/internal/server"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg, server.NewLogger(cfg))
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
