package services

import (
	"strings"

	"github.com/techstar9797/voicebazaar/backend/src/models"
)

// Demo marketplace data. These tables are constant: built here once, served
// read-only, never mutated by any request path.

var culturalGuidance = map[string]models.CulturalGuidance{
	"india": {
		Country:     "India",
		Greeting:    "Namaste",
		Negotiation: "Bargaining is expected in local markets; opening offers often run 30-50% above the settling price.",
		Etiquette: []string{
			"Accept chai when offered, refusing can read as brusque",
			"Use the right hand for handing over money",
			"Build rapport before talking numbers",
		},
		CurrencyCode: "INR",
	},
	"japan": {
		Country:     "Japan",
		Greeting:    "Konnichiwa",
		Negotiation: "Listed prices are firm in most shops; discounts are discussed indirectly, if at all.",
		Etiquette: []string{
			"Hand over cash with both hands or use the tray",
			"Avoid hard bargaining, it causes loss of face",
			"A slight bow accompanies thanks",
		},
		CurrencyCode: "JPY",
	},
	"mexico": {
		Country:     "Mexico",
		Greeting:    "Buenos días",
		Negotiation: "Friendly haggling is common in mercados; start around 60-70% of the asking price.",
		Etiquette: []string{
			"Small talk first, business second",
			"Cash is preferred in open-air markets",
		},
		CurrencyCode: "MXN",
	},
	"vietnam": {
		Country:     "Vietnam",
		Greeting:    "Xin chào",
		Negotiation: "Expect to negotiate street-market prices down 30-40%; keep it light and smiling.",
		Etiquette: []string{
			"Stay calm and friendly while bargaining",
			"Small denominations make settling easier",
		},
		CurrencyCode: "VND",
	},
	"brazil": {
		Country:     "Brazil",
		Greeting:    "Olá",
		Negotiation: "Markets allow moderate bargaining; a warm manner moves prices more than pressure.",
		Etiquette: []string{
			"Physical warmth and eye contact are normal",
			"Card acceptance is wide, cash helps at feiras",
		},
		CurrencyCode: "BRL",
	},
}

var experts = []models.Expert{
	{Name: "Priya Sharma", Region: "South Asia", Specialty: "Textile sourcing", Languages: []string{"en", "hi"}},
	{Name: "Kenji Watanabe", Region: "East Asia", Specialty: "Electronics supply chains", Languages: []string{"en", "ja"}},
	{Name: "María Fernández", Region: "Latin America", Specialty: "Agricultural exports", Languages: []string{"es", "en"}},
	{Name: "Linh Tran", Region: "Southeast Asia", Specialty: "Handicraft wholesale", Languages: []string{"vi", "en"}},
	{Name: "Amara Okafor", Region: "West Africa", Specialty: "Commodity pricing", Languages: []string{"en", "fr"}},
}

var marketEvents = []models.MarketEvent{
	{Name: "Global Souk Expo", Location: "Dubai", Date: "2026-09-12", Focus: "Cross-border retail"},
	{Name: "Asia Sourcing Fair", Location: "Ho Chi Minh City", Date: "2026-10-03", Focus: "Handicrafts and textiles"},
	{Name: "Feria de Comercio", Location: "Mexico City", Date: "2026-10-21", Focus: "Agricultural trade"},
	{Name: "Bazaar Tech Summit", Location: "Bangalore", Date: "2026-11-07", Focus: "Marketplace technology"},
}

var voiceProfiles = map[string]models.VoiceProfile{
	"en": {Language: "en", Locale: "en-US", VoiceName: "aria", Greeting: "Hello! How can I help with your trade today?"},
	"hi": {Language: "hi", Locale: "hi-IN", VoiceName: "kavya", Greeting: "Namaste! Aaj aapke vyapar mein kaise madad karun?"},
	"es": {Language: "es", Locale: "es-MX", VoiceName: "lucia", Greeting: "¡Hola! ¿Cómo puedo ayudarte con tu comercio hoy?"},
	"ja": {Language: "ja", Locale: "ja-JP", VoiceName: "haruka", Greeting: "こんにちは！本日の取引をお手伝いします。"},
	"vi": {Language: "vi", Locale: "vi-VN", VoiceName: "mai", Greeting: "Xin chào! Tôi có thể giúp gì cho giao dịch của bạn?"},
	"pt": {Language: "pt", Locale: "pt-BR", VoiceName: "camila", Greeting: "Olá! Como posso ajudar no seu comércio hoje?"},
}

type marketDataServiceImpl struct{}

func NewMarketDataService() MarketDataService {
	return &marketDataServiceImpl{}
}

func (s *marketDataServiceImpl) GetCulturalGuidance(country string) (models.CulturalGuidance, bool) {
	guidance, ok := culturalGuidance[strings.ToLower(strings.TrimSpace(country))]
	return guidance, ok
}

// ListExperts returns the experts for a region, or the whole directory when
// region is empty. The returned slice is a copy; callers cannot mutate the
// table.
func (s *marketDataServiceImpl) ListExperts(region string) []models.Expert {
	region = strings.ToLower(strings.TrimSpace(region))
	out := make([]models.Expert, 0, len(experts))
	for _, e := range experts {
		if region == "" || strings.Contains(strings.ToLower(e.Region), region) {
			out = append(out, e)
		}
	}
	return out
}

func (s *marketDataServiceImpl) ListEvents() []models.MarketEvent {
	out := make([]models.MarketEvent, len(marketEvents))
	copy(out, marketEvents)
	return out
}

func (s *marketDataServiceImpl) GetVoiceProfile(language string) (models.VoiceProfile, bool) {
	profile, ok := voiceProfiles[strings.ToLower(strings.TrimSpace(language))]
	return profile, ok
}
