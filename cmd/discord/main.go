package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/SigilForge_Go/internal/discord"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	serviceName       = "sigilforge-discord"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthServer := discord.NewHTTPServer(getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	healthServer.Start()
	defer healthServer.Stop()

	bot.Registry.RegisterAll(discord.AllCommands()...)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Discord bot stopped")
}

func setupLogger() {
	cfg := logger.DefaultConfig()
	cfg.ServiceName = serviceName
	cfg.Level = getEnv("LOG_LEVEL", cfg.Level)
	cfg.Format = getEnv("LOG_FORMAT", cfg.Format)
	logger.InitLogger(cfg, nil)
}

// loadConfig reads the bot settings from the environment
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := getEnv("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: apiURL,
		APIKey: apiKey,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
