package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/app"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file; environment variables override it")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Fatalf("run app: %v", err)
	}
}
