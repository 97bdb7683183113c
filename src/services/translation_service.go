package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
	"golang.org/x/net/publicsuffix"
)

type translationRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translationResponse struct {
	TranslatedText string  `json:"translated_text"`
	Confidence     float64 `json:"confidence"`
}

var numberToken = regexp.MustCompile(`\d+(?:\.\d+)?`)

// translationServiceImpl calls the configured translation API and memoizes
// responses. With no API configured, or on any upstream failure, it passes
// the original text through so extraction can proceed untranslated.
type translationServiceImpl struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	cache      *cache.Cache
}

// NewTranslationService creates the translation client. apiURL may be empty,
// which turns the service into a pass-through.
func NewTranslationService(apiURL, apiKey string, timeout, cacheTTL time.Duration) TranslationService {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}
	return &translationServiceImpl{
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		cache:      cache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *translationServiceImpl) Translate(ctx context.Context, text, sourceLang, targetLang string) (models.TranslationResult, error) {
	passthrough := models.TranslationResult{TranslatedText: text, Confidence: 0}

	if strings.TrimSpace(text) == "" || strings.EqualFold(sourceLang, targetLang) {
		return passthrough, nil
	}
	if s.apiURL == "" {
		logger.L.Debug("No translation API configured, passing text through", "sourceLang", sourceLang, "targetLang", targetLang)
		return passthrough, nil
	}

	cacheKey := sourceLang + "|" + targetLang + "|" + text
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(models.TranslationResult), nil
	}

	translated, confidence, err := s.callTranslationAPI(ctx, text, sourceLang, targetLang)
	if err != nil {
		logger.L.Warn("Translation API call failed, falling back to original text",
			"sourceLang", sourceLang, "targetLang", targetLang, "error", err)
		return passthrough, err
	}

	result := models.TranslationResult{
		TranslatedText: preserveNumbers(text, translated),
		Confidence:     confidence,
	}
	s.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *translationServiceImpl) callTranslationAPI(ctx context.Context, text, sourceLang, targetLang string) (string, float64, error) {
	body, err := json.Marshal(translationRequest{Text: text, Source: sourceLang, Target: targetLang})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("translation API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("translation API returned non-OK status %d", resp.StatusCode)
	}

	var decoded translationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", 0, fmt.Errorf("failed to decode translation response: %w", err)
	}
	if strings.TrimSpace(decoded.TranslatedText) == "" {
		return "", 0, fmt.Errorf("translation API returned empty text")
	}
	return decoded.TranslatedText, decoded.Confidence, nil
}

// preserveNumbers restores every numeric token from the original text into
// the translated one, positionally. Quantities and prices must survive
// translation verbatim or the extraction downstream records the wrong
// numbers.
func preserveNumbers(original, translated string) string {
	originals := numberToken.FindAllString(original, -1)
	if len(originals) == 0 {
		return translated
	}

	idx := 0
	restored := numberToken.ReplaceAllStringFunc(translated, func(m string) string {
		if idx < len(originals) {
			out := originals[idx]
			idx++
			return out
		}
		return m
	})
	if idx < len(originals) {
		logger.L.Warn("Translated text dropped numeric tokens",
			"originalCount", len(originals), "restoredCount", idx)
	}
	return restored
}
