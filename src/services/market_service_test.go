package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCulturalGuidance(t *testing.T) {
	svc := NewMarketDataService()

	guidance, ok := svc.GetCulturalGuidance("  India ")
	require.True(t, ok)
	assert.Equal(t, "India", guidance.Country)
	assert.Equal(t, "INR", guidance.CurrencyCode)

	_, ok = svc.GetCulturalGuidance("Atlantis")
	assert.False(t, ok)
}

func TestListExpertsFilterByRegion(t *testing.T) {
	svc := NewMarketDataService()

	all := svc.ListExperts("")
	assert.Len(t, all, 5)

	asia := svc.ListExperts("asia")
	require.NotEmpty(t, asia)
	for _, e := range asia {
		assert.Contains(t, e.Region, "Asia")
	}

	none := svc.ListExperts("antarctica")
	assert.Empty(t, none)
}

func TestListEventsReturnsCopy(t *testing.T) {
	svc := NewMarketDataService()

	events := svc.ListEvents()
	require.NotEmpty(t, events)
	events[0].Name = "tampered"

	again := svc.ListEvents()
	assert.NotEqual(t, "tampered", again[0].Name, "table must stay immutable")
}

func TestGetVoiceProfile(t *testing.T) {
	svc := NewMarketDataService()

	profile, ok := svc.GetVoiceProfile("HI")
	require.True(t, ok)
	assert.Equal(t, "hi-IN", profile.Locale)

	_, ok = svc.GetVoiceProfile("xx")
	assert.False(t, ok)
}
