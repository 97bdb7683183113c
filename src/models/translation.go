package models

// TranslationResult is what the translation collaborator returns. When the
// upstream service is unavailable, TranslatedText carries the original text
// and Confidence is 0.
type TranslationResult struct {
	TranslatedText string  `json:"translated_text"`
	Confidence     float64 `json:"confidence"`
}
