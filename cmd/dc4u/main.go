package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/dc4u/cmd/dc4u/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
