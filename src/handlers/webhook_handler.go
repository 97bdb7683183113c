package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/techstar9797/voicebazaar/backend/src/extractor"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
	"github.com/techstar9797/voicebazaar/backend/src/services"
	"github.com/techstar9797/voicebazaar/backend/src/utils"
)

// Tool names the voice assistant is configured with.
const (
	toolExtractTradeInfo         = "extract_trade_info"
	toolExtractPriceIntelligence = "extract_price_intelligence"
	toolSwitchLanguage           = "switch_language"
	toolGetTariffRate            = "get_tariff_rate"
	toolGetCulturalGuidance      = "get_cultural_guidance"
)

// WebhookHandler bridges the voice assistant's function-calling protocol to
// the business handlers. One envelope may carry several tool calls; each is
// answered independently and a bad call never fails the envelope.
type WebhookHandler struct {
	tradeExtractor *extractor.TradeExtractor
	priceExtractor *extractor.PriceExtractor
	tariffService  services.TariffService
	marketService  services.MarketDataService
}

func NewWebhookHandler(
	tradeExtractor *extractor.TradeExtractor,
	priceExtractor *extractor.PriceExtractor,
	tariffService services.TariffService,
	marketService services.MarketDataService,
) *WebhookHandler {
	return &WebhookHandler{
		tradeExtractor: tradeExtractor,
		priceExtractor: priceExtractor,
		tariffService:  tariffService,
		marketService:  marketService,
	}
}

func (h *WebhookHandler) HandleToolCalls(w http.ResponseWriter, r *http.Request) {
	var payload models.ToolCallPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendJSONError(w, "invalid tool-call payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	// An envelope with zero tool calls is answered with an empty results
	// array; the voice provider treats any non-200 as a tool failure.
	response := models.ToolCallResponse{Results: []models.ToolCallResult{}}
	for _, call := range payload.Message.ToolCalls {
		result := h.dispatch(r, call)
		response.Results = append(response.Results, models.ToolCallResult{
			ToolCallID: call.ID,
			Result:     result,
		})
	}

	utils.SendJSON(w, response)
}

func (h *WebhookHandler) dispatch(r *http.Request, call models.ToolCall) any {
	args := call.Function.ArgumentsMap()
	logger.L.Info("Dispatching tool call", "tool", call.Function.Name, "toolCallId", call.ID)

	switch call.Function.Name {
	case toolExtractTradeInfo:
		return h.tradeExtractor.Extract(models.TradeArgs{
			Quantity:   args["quantity"],
			Unit:       args["unit"],
			UnitPrice:  args["unit_price"],
			Currency:   args["currency"],
			TotalValue: args["total_value"],
		})

	case toolExtractPriceIntelligence:
		text := extractor.CoerceString(args["text"])
		location := extractor.CoerceString(args["location"])
		language := extractor.CoerceString(args["language"])
		record := h.priceExtractor.Extract(r.Context(), text, location, language)
		if record == nil {
			return map[string]any{
				"found":       false,
				"message":     "No price information found. Try phrasing like: " + strings.Join(extractor.RephraseSuggestions(), "; "),
				"suggestions": extractor.RephraseSuggestions(),
			}
		}
		return map[string]any{
			"found":  true,
			"record": record,
			"confirmation": fmt.Sprintf("Recorded %s at %s %s. You earned %s USD.",
				record.Product, utils.FormatAmount(record.Price), record.Currency,
				utils.FormatAmount(record.IncentiveEarned)),
		}

	case toolSwitchLanguage:
		language := extractor.CoerceString(args["language"])
		profile, ok := h.marketService.GetVoiceProfile(language)
		if !ok {
			return map[string]any{
				"switched": false,
				"message":  fmt.Sprintf("Language %q is not supported yet.", language),
			}
		}
		return map[string]any{
			"switched": true,
			"profile":  profile,
			"message":  profile.Greeting,
		}

	case toolGetTariffRate:
		product := extractor.CoerceString(args["product"])
		origin := extractor.CoerceString(args["origin"])
		destination := extractor.CoerceString(args["destination"])
		rate, err := h.tariffService.GetTariffRate(r.Context(), product, origin, destination)
		if err != nil {
			// Service already falls back to the table; an error here is unexpected.
			logger.L.Error("Tariff lookup failed", "product", product, "error", err)
			return map[string]any{"error": "tariff lookup failed"}
		}
		return rate

	case toolGetCulturalGuidance:
		country := extractor.CoerceString(args["country"])
		guidance, ok := h.marketService.GetCulturalGuidance(country)
		if !ok {
			return map[string]any{
				"found":   false,
				"message": fmt.Sprintf("No cultural guidance available for %q.", country),
			}
		}
		return guidance

	default:
		logger.L.Warn("Unknown tool requested", "tool", call.Function.Name, "toolCallId", call.ID)
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", call.Function.Name)}
	}
}
