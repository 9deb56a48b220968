package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/floor_assignment_app/internal/display"
	"github.com/SscSPs/floor_assignment_app/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	_ = godotenv.Load()
	viper.SetDefault("BOARD_BASE_URL", "http://localhost:8080")
	viper.SetDefault("BOARD_MODE", "")
	viper.SetDefault("BOARD_REQUEST_TIMEOUT", "5s")
	viper.AutomaticEnv()

	baseURL := flag.String("base-url", viper.GetString("BOARD_BASE_URL"), "board server base URL")
	mode := flag.String("mode", viper.GetString("BOARD_MODE"), `display mode: "workplace" or "employee" (empty uses the server default)`)
	pageInterval := flag.Duration("page-interval", 0, "page rotation interval (0 uses the server value)")
	refreshInterval := flag.Duration("refresh-interval", 0, "board reload interval (0 uses the server value)")
	clearScreen := flag.Bool("clear", true, "clear the terminal before each frame")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *mode != "" && *mode != "workplace" && *mode != "employee" {
		logger.Error("Invalid mode", slog.String("mode", *mode))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := telemetry.Setup(ctx, "board-display", logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(shutdownCtx)
	}()

	timeout, err := time.ParseDuration(viper.GetString("BOARD_REQUEST_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
	}

	renderer := display.NewTextRenderer(os.Stdout)
	renderer.ClearScreen = *clearScreen

	rotator := display.NewRotator(
		display.NewClient(*baseURL, timeout),
		renderer,
		display.WithMode(*mode),
		display.WithIntervals(*pageInterval, *refreshInterval),
		display.WithLogger(logger),
	)

	logger.Info("Starting board display", slog.String("base_url", *baseURL), slog.String("mode", *mode))
	if err := rotator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Display stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Board display stopped")
}
