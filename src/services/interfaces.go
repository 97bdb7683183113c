package services

import (
	"context"

	"github.com/techstar9797/voicebazaar/backend/src/models"
)

// TranslationService brings voice-transcribed text into the processing
// language. Implementations must degrade gracefully: when the upstream
// provider is unreachable, return the original text rather than failing the
// extraction path.
type TranslationService interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (models.TranslationResult, error)
}

// TariffService answers tariff-rate lookups for a product shipped between
// two countries.
type TariffService interface {
	GetTariffRate(ctx context.Context, product, origin, destination string) (models.TariffRate, error)
}

// MarketDataService serves the read-only demo marketplace data: cultural
// guidance, the expert directory, the event schedule, and voice profiles.
type MarketDataService interface {
	GetCulturalGuidance(country string) (models.CulturalGuidance, bool)
	ListExperts(region string) []models.Expert
	ListEvents() []models.MarketEvent
	GetVoiceProfile(language string) (models.VoiceProfile, bool)
}
