// Package intent decides how a user message is handled: whether live market
// data is worth fetching, and which framing the model prompt should use.
// Matching is plain lowercase substring containment. No tokenization or
// negation handling; false positives on unrelated phrases are accepted.
package intent

import "strings"

// priceLookupKeywords gates the market-data fetch.
var priceLookupKeywords = []string{
	"gold", "rate", "price", "24k", "22k", "golden", "jewelry", "gram", "tola",
}

// promptFramingKeywords gates the prompt template. Deliberately a different
// set from priceLookupKeywords: the two checks are independent.
var promptFramingKeywords = []string{
	"gold", "karat", "tola", "gram", "jewelry", "jewel", "mine", "mining", "golden",
}

// PriceLookup reports whether the message should trigger a market-data fetch.
func PriceLookup(message string) bool {
	return containsAny(message, priceLookupKeywords)
}

// PromptFraming reports whether the message gets the gold-aware prompt.
func PromptFraming(message string) bool {
	return containsAny(message, promptFramingKeywords)
}

func containsAny(message string, keywords []string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
