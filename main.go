package main

import (
	"context"
	"html/template"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/avinay/boutique-journey/config"
	"github.com/avinay/boutique-journey/gateway"
	"github.com/avinay/boutique-journey/middleware"
	"github.com/avinay/boutique-journey/routes"
	"github.com/avinay/boutique-journey/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := newLogger(cfg)
	logger.Info().Str("store", cfg.StoreAPIURL).Msg("starting storefront")

	tokens := store.NewFileTokenStore(cfg.TokenFile)
	api := gateway.New(gateway.Config{
		BaseURL:        cfg.StoreAPIURL,
		ConsumerKey:    cfg.ConsumerKey,
		ConsumerSecret: cfg.ConsumerSecret,
	}, tokens, logger)

	authStore := store.NewAuthStore(api, tokens, logger)
	cartStore := store.NewCartStore(api, logger)

	// Startup: restore a persisted session and load the cart once. Both are
	// best-effort; failures leave a logged-out session and an empty cart.
	startupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	authStore.RestoreSession(startupCtx)
	if err := cartStore.Fetch(startupCtx); err != nil {
		logger.Warn().Err(err).Msg("initial cart load failed")
	}
	cancel()

	// Gin setup
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Quantity steppers in the cart template.
	r.SetFuncMap(template.FuncMap{
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
	})
	r.LoadHTMLGlob("templates/*.tmpl")
	r.Static("/static", "./static")
	routes.SetupRoutes(r, api, authStore, cartStore, cfg)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	if cfg.IsProduction() {
		return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	}
	return zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
