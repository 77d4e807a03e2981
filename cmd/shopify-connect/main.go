package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/shopify-connect/pkg/shopifyauth"
)

type Config struct {
	// Shopify app
	ShopifyClientID     string `env:"SHOPIFY_CLIENT_ID" env-default:""`
	ShopifyClientSecret string `env:"SHOPIFY_CLIENT_SECRET" env-default:""`
	ShopifyScopes       string `env:"SHOPIFY_SCOPES" env-default:"read_orders"`
	RedirectURL         string `env:"SHOPIFY_REDIRECT_URL" env-default:"http://localhost:4000/auth/shopify/callback"`
	ShopDomainCheck     bool   `env:"SHOPIFY_SHOP_DOMAIN_CHECK" env-default:"true"`
	ExchangeTimeout     string `env:"SHOPIFY_EXCHANGE_TIMEOUT" env-default:"15s"`

	// Server
	AppConfig app.AppConfig
}

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Shopify Connect Service")

	// Load .env file
	loadEnvFile()

	// Load configuration
	config := Config{}
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "error", err)
		os.Exit(1)
	}

	if config.ShopifyClientID == "" || config.ShopifyClientSecret == "" {
		slog.Warn("Shopify app credentials not set - callbacks will fail until SHOPIFY_CLIENT_ID and SHOPIFY_CLIENT_SECRET are configured")
	}

	timeout, err := time.ParseDuration(config.ExchangeTimeout)
	if err != nil {
		slog.Warn("Invalid SHOPIFY_EXCHANGE_TIMEOUT, using default", "value", config.ExchangeTimeout)
		timeout = 15 * time.Second
	}

	authService := shopifyauth.NewAuthService(
		shopifyauth.Credentials{
			ClientID:     config.ShopifyClientID,
			ClientSecret: config.ShopifyClientSecret,
		},
		shopifyauth.WithScopes(config.ShopifyScopes),
		shopifyauth.WithRedirectURL(config.RedirectURL),
		shopifyauth.WithHTTPClient(&http.Client{Timeout: timeout}),
		shopifyauth.WithShopDomainValidation(config.ShopDomainCheck),
	)

	// Setup HTTP server
	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	handle := shopifyauth.NewHandle(authService)
	shopifyauth.Routes(server.R, handle)

	slog.Info("Shopify Connect Service Ready", "callback", config.RedirectURL, "scopes", config.ShopifyScopes)

	// Start server
	server.Run()
}

// loadEnvFile loads environment variables from .env file if it exists
func loadEnvFile() {
	envFile := ".env"

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		execPath, err := os.Executable()
		if err != nil {
			return
		}
		envFile = filepath.Join(filepath.Dir(execPath), ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Debug("No .env file found (using environment variables or defaults)")
		return
	}

	slog.Info("Loading configuration from .env file", "path", envFile)
	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}
}
