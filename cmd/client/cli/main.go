package main

import (
	"context"
	"log"

	"thoughts/internal/client/cli"
	"thoughts/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
