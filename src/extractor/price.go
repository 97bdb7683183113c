package extractor

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/techstar9797/voicebazaar/backend/src/logger"
	"github.com/techstar9797/voicebazaar/backend/src/models"
	"github.com/techstar9797/voicebazaar/backend/src/utils"
)

// Translator is the upstream translation collaborator. Implementations may
// fail; the extractor recovers by running the patterns over the original
// text.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (models.TranslationResult, error)
}

// Incentive paid per contributed price point: 1% of the spoken price,
// clamped to [0.10, 1.00] USD-equivalent, then converted at the fixed rate
// for the resolved currency.
const (
	incentiveShare = 0.01
	incentiveFloor = 0.10
	incentiveCeil  = 1.00
)

// priceRule is one phrase pattern. All patterns capture, in order: product
// fragment, optional currency symbol, numeric price, optional 3-letter
// currency code. Rules are tried in slice order; the first match wins.
type priceRule struct {
	name    string
	example string
	re      *regexp.Regexp
}

var priceRules = []priceRule{
	{
		name:    "product-costs",
		example: "Coffee costs about $4 here",
		re:      regexp.MustCompile(`(?i)([a-z][a-z\s]*?)\s+(?:costs?|is|price)\s+(?:(?:about|around)\s+)?([$€£¥₹₩])?\s*(\d+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`),
	},
	{
		name:    "product-selling-for",
		example: "Rice selling for 50 INR",
		re:      regexp.MustCompile(`(?i)([a-z][a-z\s]*?)\s+(?:selling|available)\s+(?:for|at)\s+([$€£¥₹₩])?\s*(\d+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`),
	},
	{
		name:    "price-of-product",
		example: "The price of tomatoes is 3 euros",
		re:      regexp.MustCompile(`(?i)(?:price|cost)\s+of\s+([a-z][a-z\s]*?)\s+(?:is|costs?)\s+(?:(?:about|around)\s+)?([$€£¥₹₩])?\s*(\d+(?:\.\d{1,2})?)(?:\s*([A-Za-z]{3})\b)?`),
	},
}

// Leading filler the lazy product capture tends to swallow, stripped in
// order until nothing applies.
var productPrefixes = []string{"the ", "a ", "an ", "this ", "that ", "my ", "our ", "price of ", "cost of "}

// PriceExtractor scans free-form, voice-transcribed text for a price mention
// and produces a PriceRecord. Stateless apart from the injected clock; safe
// for concurrent use.
type PriceExtractor struct {
	translator     Translator
	processingLang string
	now            func() time.Time
}

// NewPriceExtractor builds an extractor whose patterns are written for
// processingLang. translator may be nil, in which case foreign-language text
// is matched as-is.
func NewPriceExtractor(translator Translator, processingLang string) *PriceExtractor {
	if processingLang == "" {
		processingLang = "en"
	}
	return &PriceExtractor{
		translator:     translator,
		processingLang: processingLang,
		now:            time.Now,
	}
}

// Extract returns the extracted price record, or nil when the text contains
// no recognizable price phrase. It never returns an error: translation
// failures degrade to matching the untranslated text, and unparseable
// numbers count as no match.
func (p *PriceExtractor) Extract(ctx context.Context, text, location, language string) *models.PriceRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	matchText := p.normalizeLanguage(ctx, text, language)

	for _, rule := range priceRules {
		m := rule.re.FindStringSubmatch(matchText)
		if m == nil {
			continue
		}

		price, err := strconv.ParseFloat(m[3], 64)
		if err != nil || price <= 0 {
			continue
		}

		product := cleanProduct(m[1])
		if product == "" {
			continue
		}

		currency := ResolveCurrency(explicitCode(m[4]), m[2], location)

		return &models.PriceRecord{
			Product:         product,
			Price:           price,
			Currency:        currency,
			Location:        location,
			Shopkeeper:      models.PlaceholderShopkeeper,
			Timestamp:       p.now().UTC(),
			Verified:        false,
			IncentiveEarned: ComputeIncentive(price, currency),
		}
	}
	return nil
}

// normalizeLanguage translates text into the processing language when it was
// declared in another one. Any failure falls back to the original text.
func (p *PriceExtractor) normalizeLanguage(ctx context.Context, text, language string) string {
	if language == "" || strings.EqualFold(language, p.processingLang) || p.translator == nil {
		return text
	}
	res, err := p.translator.Translate(ctx, text, language, p.processingLang)
	if err != nil || strings.TrimSpace(res.TranslatedText) == "" {
		if logger.L != nil {
			logger.L.Warn("Translation failed, matching untranslated text", "language", language, "error", err)
		}
		return text
	}
	return res.TranslatedText
}

// ComputeIncentive derives the micro-payment for a contributed price point.
// Pure function of (price, currency): identical inputs always earn the same
// amount.
func ComputeIncentive(price float64, currency string) float64 {
	base := utils.ClampFloat(price*incentiveShare, incentiveFloor, incentiveCeil)
	return utils.RoundFloat(base*USDRate(currency), 2)
}

// RephraseSuggestions lists example phrasings, one per pattern, for the
// "no price found" reply.
func RephraseSuggestions() []string {
	suggestions := make([]string, 0, len(priceRules))
	for _, rule := range priceRules {
		suggestions = append(suggestions, rule.example)
	}
	return suggestions
}

// explicitCode accepts the captured 3-letter group as a currency code only
// when it was spoken/written in uppercase. Lowercase captures are almost
// always ordinary words ("per", "her") rather than ISO codes.
func explicitCode(captured string) string {
	if captured != "" && captured == strings.ToUpper(captured) {
		return captured
	}
	return ""
}

func cleanProduct(raw string) string {
	product := strings.TrimSpace(raw)
	for {
		lower := strings.ToLower(product)
		stripped := false
		for _, prefix := range productPrefixes {
			if strings.HasPrefix(lower, prefix) {
				product = strings.TrimSpace(product[len(prefix):])
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return product
}
