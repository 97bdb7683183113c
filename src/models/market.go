package models

// TariffRate is the result of a tariff lookup for a product shipped between
// two countries. Rate is an ad-valorem percentage.
type TariffRate struct {
	Product     string  `json:"product"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	RatePercent float64 `json:"rate_percent"`
	Source      string  `json:"source"` // "api" or "table"
	Notes       string  `json:"notes,omitempty"`
}

// CulturalGuidance is demo negotiation/etiquette advice for a country.
type CulturalGuidance struct {
	Country      string   `json:"country"`
	Greeting     string   `json:"greeting"`
	Negotiation  string   `json:"negotiation"`
	Etiquette    []string `json:"etiquette"`
	CurrencyCode string   `json:"currency_code"`
}

// Expert is one entry of the demo trade-expert directory.
type Expert struct {
	Name      string   `json:"name"`
	Region    string   `json:"region"`
	Specialty string   `json:"specialty"`
	Languages []string `json:"languages"`
}

// MarketEvent is one entry of the demo event schedule.
type MarketEvent struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Focus    string `json:"focus"`
}

// VoiceProfile describes the assistant voice used for a spoken language.
type VoiceProfile struct {
	Language  string `json:"language"`
	Locale    string `json:"locale"`
	VoiceName string `json:"voice_name"`
	Greeting  string `json:"greeting"`
}
