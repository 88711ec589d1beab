package translate

import "strings"

// languageNames maps ISO 639-1 codes to the English names used in prompts.
var languageNames = map[string]string{
	"ar": "Arabic",
	"bg": "Bulgarian",
	"de": "German",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"tr": "Turkish",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// LanguageName resolves an ISO 639-1 code to an English language name.
// Unknown codes are returned as-is so prompts stay usable.
func LanguageName(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if name, ok := languageNames[normalized]; ok {
		return name
	}
	return code
}
