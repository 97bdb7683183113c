package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
)

// Built-in ad-valorem tariff table, percent by product category and
// destination country. Real tariff-database integration is out of scope;
// this table is the deterministic source the demo runs on. Read-only after
// init.
var tariffTable = map[string]map[string]float64{
	"electronics": {
		"united states": 7.5,
		"india":         15.0,
		"brazil":        16.0,
		"germany":       4.2,
		"japan":         0.0,
	},
	"textiles": {
		"united states": 11.4,
		"india":         10.0,
		"brazil":        26.0,
		"germany":       6.5,
		"japan":         5.3,
	},
	"agriculture": {
		"united states": 4.8,
		"india":         32.8,
		"brazil":        10.2,
		"germany":       11.1,
		"japan":         17.3,
	},
	"handicrafts": {
		"united states": 3.3,
		"india":         10.0,
		"brazil":        18.0,
		"germany":       2.7,
		"japan":         2.1,
	},
}

const defaultTariffPercent = 8.0

// categoryKeywords maps product words to a tariff category. First match in
// this fixed order wins.
var categoryKeywords = []struct {
	Keyword  string
	Category string
}{
	{"phone", "electronics"},
	{"laptop", "electronics"},
	{"electronic", "electronics"},
	{"chip", "electronics"},
	{"fabric", "textiles"},
	{"textile", "textiles"},
	{"cotton", "textiles"},
	{"silk", "textiles"},
	{"garment", "textiles"},
	{"rice", "agriculture"},
	{"coffee", "agriculture"},
	{"spice", "agriculture"},
	{"tea", "agriculture"},
	{"grain", "agriculture"},
	{"craft", "handicrafts"},
	{"pottery", "handicrafts"},
	{"jewelry", "handicrafts"},
	{"carving", "handicrafts"},
}

type tariffAPIResponse struct {
	RatePercent float64 `json:"rate_percent"`
	Notes       string  `json:"notes"`
}

// tariffServiceImpl resolves tariff rates, preferring the configured
// external API and falling back to the built-in table on any failure.
type tariffServiceImpl struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	cache      *cache.Cache
}

func NewTariffService(apiURL, apiKey string, timeout, cacheTTL time.Duration) TariffService {
	return &tariffServiceImpl{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		cache:      cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *tariffServiceImpl) GetTariffRate(ctx context.Context, product, origin, destination string) (models.TariffRate, error) {
	cacheKey := strings.ToLower(product + "|" + origin + "|" + destination)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(models.TariffRate), nil
	}

	if s.apiURL != "" {
		rate, err := s.fetchFromAPI(ctx, product, origin, destination)
		if err == nil {
			s.cache.Set(cacheKey, rate, cache.DefaultExpiration)
			return rate, nil
		}
		logger.L.Warn("Tariff API lookup failed, using built-in table",
			"product", product, "destination", destination, "error", err)
	}

	rate := s.lookupTable(product, origin, destination)
	s.cache.Set(cacheKey, rate, cache.DefaultExpiration)
	return rate, nil
}

func (s *tariffServiceImpl) fetchFromAPI(ctx context.Context, product, origin, destination string) (models.TariffRate, error) {
	query := url.Values{}
	query.Set("product", product)
	query.Set("origin", origin)
	query.Set("destination", destination)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+query.Encode(), nil)
	if err != nil {
		return models.TariffRate{}, fmt.Errorf("failed to build tariff request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.TariffRate{}, fmt.Errorf("tariff API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TariffRate{}, fmt.Errorf("tariff API returned non-OK status %d", resp.StatusCode)
	}

	var decoded tariffAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.TariffRate{}, fmt.Errorf("failed to decode tariff response: %w", err)
	}

	return models.TariffRate{
		Product:     product,
		Origin:      origin,
		Destination: destination,
		RatePercent: decoded.RatePercent,
		Source:      "api",
		Notes:       decoded.Notes,
	}, nil
}

func (s *tariffServiceImpl) lookupTable(product, origin, destination string) models.TariffRate {
	category := categorizeProduct(product)
	rate := defaultTariffPercent
	notes := "general rate"

	if byCountry, ok := tariffTable[category]; ok {
		notes = category + " category rate"
		dest := strings.ToLower(strings.TrimSpace(destination))
		if r, ok := byCountry[dest]; ok {
			rate = r
		} else {
			rate = defaultTariffPercent
			notes = category + " category, destination not tabulated"
		}
	}

	return models.TariffRate{
		Product:     product,
		Origin:      origin,
		Destination: destination,
		RatePercent: rate,
		Source:      "table",
		Notes:       notes,
	}
}

func categorizeProduct(product string) string {
	p := strings.ToLower(product)
	for _, ck := range categoryKeywords {
		if strings.Contains(p, ck.Keyword) {
			return ck.Category
		}
	}
	return "general"
}
