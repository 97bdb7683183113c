package models

import "time"

// TradeRecord is the normalized result of a trade-information extraction.
// Constructed fresh per request and discarded after the response is sent.
type TradeRecord struct {
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	Currency   string  `json:"currency"`
	TotalValue float64 `json:"total_value"`
	Status     string  `json:"status"`
}

const TradeStatusExtracted = "extracted"

// TradeArgs carries the raw, possibly untyped arguments for a trade
// extraction as they arrive from the voice assistant's function-calling
// layer. Numbers may show up as JSON numbers or as numeric strings.
type TradeArgs struct {
	Quantity   any `json:"quantity,omitempty"`
	Unit       any `json:"unit,omitempty"`
	UnitPrice  any `json:"unit_price,omitempty"`
	Currency   any `json:"currency,omitempty"`
	TotalValue any `json:"total_value,omitempty"`
}

// TradeExtraction is the full response of the trade extractor: the
// normalized record, the speakable confirmation, and a verbatim echo of the
// pre-normalization inputs for downstream consumers.
type TradeExtraction struct {
	Record       TradeRecord `json:"record"`
	Confirmation string      `json:"confirmation"`
	RawEcho      TradeArgs   `json:"raw_echo"`
}

// PriceRecord is one contributed price data point extracted from free-form
// speech. Verified is always false at creation; verification happens
// elsewhere, if ever.
type PriceRecord struct {
	Product         string    `json:"product"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	Location        string    `json:"location"`
	Shopkeeper      string    `json:"shopkeeper"`
	Timestamp       time.Time `json:"timestamp"`
	Verified        bool      `json:"verified"`
	IncentiveEarned float64   `json:"incentive_earned"`
}

// PlaceholderShopkeeper stands in until real contributor identification exists.
const PlaceholderShopkeeper = "local_vendor"
