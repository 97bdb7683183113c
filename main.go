package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/techstar9797/voicebazaar/backend/src/config"
	"github.com/techstar9797/voicebazaar/backend/src/extractor"
	"github.com/techstar9797/voicebazaar/backend/src/handlers"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/security"
	"github.com/techstar9797/voicebazaar/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("VoiceBazaar backend server starting...")

	logger.L.Info("Initializing services and handlers...")
	webhookAuth := security.NewWebhookAuthService(config.Cfg.WebhookJWTSecret, config.Cfg.WebhookTokenExpiry)
	translationService := services.NewTranslationService(
		config.Cfg.TranslationAPIURL, config.Cfg.TranslationAPIKey,
		config.Cfg.HTTPClientTimeout, config.Cfg.TranslationCacheTTL,
	)
	tariffService := services.NewTariffService(
		config.Cfg.TariffAPIURL, config.Cfg.TariffAPIKey,
		config.Cfg.HTTPClientTimeout, config.Cfg.TariffCacheTTL,
	)
	marketService := services.NewMarketDataService()

	tradeExtractor := extractor.NewTradeExtractor()
	priceExtractor := extractor.NewPriceExtractor(translationService, config.Cfg.ProcessingLanguage)

	webhookHandler := handlers.NewWebhookHandler(tradeExtractor, priceExtractor, tariffService, marketService)
	priceHandler := handlers.NewPriceHandler(tradeExtractor, priceExtractor)
	marketHandler := handlers.NewMarketHandler(tariffService, marketService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	// Voice-assistant webhook (bearer auth only when a secret is configured)
	webhookProtection := handlers.WebhookAuthMiddleware(webhookAuth)
	apiRouter.Handle("POST /api/webhook/voice", webhookProtection(http.HandlerFunc(webhookHandler.HandleToolCalls)))

	// REST surface for the demo UI
	apiRouter.HandleFunc("GET /api/price-intelligence", priceHandler.HandleExtractPrice)
	apiRouter.HandleFunc("POST /api/trade/extract", priceHandler.HandleExtractTrade)
	apiRouter.HandleFunc("GET /api/tariffs", marketHandler.HandleGetTariff)
	apiRouter.HandleFunc("GET /api/market/cultural-guidance", marketHandler.HandleCulturalGuidance)
	apiRouter.HandleFunc("GET /api/market/experts", marketHandler.HandleExperts)
	apiRouter.HandleFunc("GET /api/market/events", marketHandler.HandleEvents)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "VoiceBazaar backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := handlers.EnableCORS(config.Cfg.AllowedOrigin)(handlers.RateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
