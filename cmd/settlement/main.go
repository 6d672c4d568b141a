package main

import (
	"casino_settlement/internal/app"
	"log/slog"
	"os"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
