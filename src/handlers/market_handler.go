package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/techstar9797/voicebazaar/backend/src/services"
	"github.com/techstar9797/voicebazaar/backend/src/utils"
)

// MarketHandler serves the demo market data and tariff lookups.
type MarketHandler struct {
	tariffService services.TariffService
	marketService services.MarketDataService
}

func NewMarketHandler(tariffService services.TariffService, marketService services.MarketDataService) *MarketHandler {
	return &MarketHandler{
		tariffService: tariffService,
		marketService: marketService,
	}
}

// HandleGetTariff serves GET /api/tariffs?product=&origin=&destination=.
// product and destination are required.
func (h *MarketHandler) HandleGetTariff(w http.ResponseWriter, r *http.Request) {
	product := strings.TrimSpace(r.URL.Query().Get("product"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	origin := strings.TrimSpace(r.URL.Query().Get("origin"))

	if product == "" || destination == "" {
		utils.SendJSONError(w, "missing required query parameters: product, destination", http.StatusBadRequest)
		return
	}

	rate, err := h.tariffService.GetTariffRate(r.Context(), product, origin, destination)
	if err != nil {
		utils.SendJSONError(w, fmt.Sprintf("tariff lookup failed: %v", err), http.StatusInternalServerError)
		return
	}
	utils.SendJSON(w, rate)
}

func (h *MarketHandler) HandleCulturalGuidance(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		utils.SendJSONError(w, "missing required query parameter: country", http.StatusBadRequest)
		return
	}
	guidance, ok := h.marketService.GetCulturalGuidance(country)
	if !ok {
		utils.SendJSON(w, map[string]any{
			"found":   false,
			"message": fmt.Sprintf("no cultural guidance available for %q", country),
		})
		return
	}
	utils.SendJSON(w, guidance)
}

func (h *MarketHandler) HandleExperts(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	utils.SendJSON(w, h.marketService.ListExperts(region))
}

func (h *MarketHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, h.marketService.ListEvents())
}
