package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/techstar9797/voicebazaar/backend/src/extractor"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
	"github.com/techstar9797/voicebazaar/backend/src/utils"
)

// PriceHandler exposes the extractors over plain REST for the demo UI.
type PriceHandler struct {
	tradeExtractor *extractor.TradeExtractor
	priceExtractor *extractor.PriceExtractor
}

func NewPriceHandler(tradeExtractor *extractor.TradeExtractor, priceExtractor *extractor.PriceExtractor) *PriceHandler {
	return &PriceHandler{
		tradeExtractor: tradeExtractor,
		priceExtractor: priceExtractor,
	}
}

// HandleExtractPrice serves GET /api/price-intelligence. `text` is required;
// `location` and `language` are optional hints. A text with no recognizable
// price phrase is a 200 with found=false, not an error.
func (h *PriceHandler) HandleExtractPrice(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		utils.SendJSONError(w, "missing required query parameter: text", http.StatusBadRequest)
		return
	}
	location := r.URL.Query().Get("location")
	language := r.URL.Query().Get("language")

	record := h.priceExtractor.Extract(r.Context(), text, location, language)
	if record == nil {
		logger.L.Debug("No price found in text", "textLength", len(text), "location", location)
		utils.SendJSON(w, map[string]any{
			"found":       false,
			"suggestions": extractor.RephraseSuggestions(),
		})
		return
	}

	utils.SendJSON(w, map[string]any{
		"found":  true,
		"record": record,
	})
}

// HandleExtractTrade serves POST /api/trade/extract with a JSON body of
// loosely typed trade arguments. Malformed numerics inside the body default;
// only an unreadable body is a client error.
func (h *PriceHandler) HandleExtractTrade(w http.ResponseWriter, r *http.Request) {
	var args models.TradeArgs
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		utils.SendJSONError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	utils.SendJSON(w, h.tradeExtractor.Extract(args))
}
