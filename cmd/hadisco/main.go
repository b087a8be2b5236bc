package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := newApp()
	app.Reader = os.Stdin
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	if err := app.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "hadisco: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
