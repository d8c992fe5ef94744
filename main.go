package main

import (
	"fmt"
	"log/slog"
	"os"

	"stockflow/internal/app"
)

func main() {
	slog.Info("Starting StockFlow application...")

	if err := app.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start application: %v\n", err)
		os.Exit(1)
	}
}
