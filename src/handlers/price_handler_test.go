package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstar9797/voicebazaar/backend/src/extractor"
	"github.com/techstar9797/voicebazaar/backend/src/models"
)

func newTestPriceHandler() *PriceHandler {
	return NewPriceHandler(extractor.NewTradeExtractor(), extractor.NewPriceExtractor(nil, "en"))
}

func TestHandleExtractPriceMissingText(t *testing.T) {
	h := newTestPriceHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/price-intelligence", nil)
	rec := httptest.NewRecorder()
	h.HandleExtractPrice(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtractPriceFound(t *testing.T) {
	h := newTestPriceHandler()
	req := httptest.NewRequest(http.MethodGet,
		"/api/price-intelligence?text=The+price+of+rice+is+50+rupees&location=India&language=en", nil)
	rec := httptest.NewRecorder()
	h.HandleExtractPrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Found  bool               `json:"found"`
		Record models.PriceRecord `json:"record"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Found)
	assert.Equal(t, "rice", body.Record.Product)
	assert.Equal(t, "INR", body.Record.Currency)
	assert.Equal(t, 50.0, body.Record.Price)
}

func TestHandleExtractPriceNoMatch(t *testing.T) {
	h := newTestPriceHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/price-intelligence?text=nice+weather", nil)
	rec := httptest.NewRecorder()
	h.HandleExtractPrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Found       bool     `json:"found"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Found)
	assert.NotEmpty(t, body.Suggestions)
}

func TestHandleExtractTrade(t *testing.T) {
	h := newTestPriceHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/trade/extract",
		strings.NewReader(`{"quantity": "120", "unit_price": 4.5}`))
	rec := httptest.NewRecorder()
	h.HandleExtractTrade(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var extraction models.TradeExtraction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &extraction))
	assert.Equal(t, 540.0, extraction.Record.TotalValue)
	assert.Equal(t, "units", extraction.Record.Unit)
	assert.Equal(t, "USD", extraction.Record.Currency)
}

func TestHandleExtractTradeBadBody(t *testing.T) {
	h := newTestPriceHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/trade/extract", strings.NewReader("nope"))
	rec := httptest.NewRecorder()
	h.HandleExtractTrade(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
