package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstar9797/voicebazaar/backend/src/extractor"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
	"github.com/techstar9797/voicebazaar/backend/src/services"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func newTestWebhookHandler() *WebhookHandler {
	return NewWebhookHandler(
		extractor.NewTradeExtractor(),
		extractor.NewPriceExtractor(nil, "en"),
		services.NewTariffService("", "", time.Second, time.Minute),
		services.NewMarketDataService(),
	)
}

func postToolCalls(t *testing.T, h *WebhookHandler, body string) (*httptest.ResponseRecorder, models.ToolCallResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/voice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleToolCalls(rec, req)

	var resp models.ToolCallResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHandleToolCallsTradeExtraction(t *testing.T) {
	h := newTestWebhookHandler()
	body := `{
		"message": {
			"toolCalls": [{
				"id": "call_1",
				"function": {
					"name": "extract_trade_info",
					"arguments": {"quantity": 120, "unit_price": 4.5, "currency": "USD"}
				}
			}]
		}
	}`
	rec, resp := postToolCalls(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "call_1", resp.Results[0].ToolCallID)

	result, err := json.Marshal(resp.Results[0].Result)
	require.NoError(t, err)
	var extraction models.TradeExtraction
	require.NoError(t, json.Unmarshal(result, &extraction))
	assert.Equal(t, 540.0, extraction.Record.TotalValue)
	assert.Equal(t, "Trade information extracted: 120 units at 4.5 USD each (Total: 540 USD)", extraction.Confirmation)
}

func TestHandleToolCallsStringEncodedArguments(t *testing.T) {
	h := newTestWebhookHandler()
	// Some assistant runtimes serialize arguments as a JSON string.
	body := `{
		"message": {
			"toolCalls": [{
				"id": "call_2",
				"function": {
					"name": "extract_price_intelligence",
					"arguments": "{\"text\": \"Coffee costs about $4 here\", \"location\": \"Unknown\", \"language\": \"en\"}"
				}
			}]
		}
	}`
	rec, resp := postToolCalls(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0].Result.(map[string]any)
	assert.Equal(t, true, result["found"])
}

func TestHandleToolCallsNoPriceFound(t *testing.T) {
	h := newTestWebhookHandler()
	body := `{
		"message": {
			"toolCalls": [{
				"id": "call_3",
				"function": {
					"name": "extract_price_intelligence",
					"arguments": {"text": "lovely weather today", "location": "India", "language": "en"}
				}
			}]
		}
	}`
	rec, resp := postToolCalls(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code, "no-match is not a request failure")
	require.Len(t, resp.Results, 1)
	result := resp.Results[0].Result.(map[string]any)
	assert.Equal(t, false, result["found"])
	assert.NotEmpty(t, result["suggestions"])
}

func TestHandleToolCallsMultipleIndependent(t *testing.T) {
	h := newTestWebhookHandler()
	body := `{
		"message": {
			"toolCalls": [
				{"id": "a", "function": {"name": "switch_language", "arguments": {"language": "hi"}}},
				{"id": "b", "function": {"name": "get_cultural_guidance", "arguments": {"country": "Japan"}}},
				{"id": "c", "function": {"name": "made_up_tool", "arguments": {}}}
			]
		}
	}`
	rec, resp := postToolCalls(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{
		resp.Results[0].ToolCallID, resp.Results[1].ToolCallID, resp.Results[2].ToolCallID,
	})

	switched := resp.Results[0].Result.(map[string]any)
	assert.Equal(t, true, switched["switched"])

	unknown := resp.Results[2].Result.(map[string]any)
	assert.Contains(t, unknown["error"], "unknown tool")
}

func TestHandleToolCallsTariff(t *testing.T) {
	h := newTestWebhookHandler()
	body := `{
		"message": {
			"toolCalls": [{
				"id": "t1",
				"function": {
					"name": "get_tariff_rate",
					"arguments": {"product": "rice", "origin": "Vietnam", "destination": "India"}
				}
			}]
		}
	}`
	rec, resp := postToolCalls(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	result, err := json.Marshal(resp.Results[0].Result)
	require.NoError(t, err)
	var rate models.TariffRate
	require.NoError(t, json.Unmarshal(result, &rate))
	assert.Equal(t, 32.8, rate.RatePercent)
	assert.Equal(t, "table", rate.Source)
}

func TestHandleToolCallsEmptyEnvelope(t *testing.T) {
	h := newTestWebhookHandler()
	rec, resp := postToolCalls(t, h, `{"message": {"toolCalls": []}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
}

func TestHandleToolCallsMalformedBody(t *testing.T) {
	h := newTestWebhookHandler()
	rec, _ := postToolCalls(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
