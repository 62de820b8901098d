package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bianoble/file-renamer/cmd/file-renamer/cmd"
)

func main() {
	// Interrupting stops before the next rename; files already staged are
	// still finished.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
