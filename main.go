package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iburimskiy/geometry-visualization/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sacredgeo:", err)
		stop()
		os.Exit(1)
	}
}
