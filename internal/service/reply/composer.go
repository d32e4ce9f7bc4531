// Package reply turns market data into the user-facing price quote text.
package reply

import (
	"fmt"
	"strings"

	marketModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/market"
)

const (
	// Unavailable is returned for gold questions when no quote could be fetched.
	Unavailable = "Live gold data is currently unavailable. Please try again soon."
	// Deferral signals that the answer is left entirely to the model.
	Deferral = "Let me check Gemini for that..."
)

// Compose produces the reply text for the given intent and market state.
// A nil quote means live data was not available.
func Compose(goldRelated bool, quote *marketModel.Quote, city string) string {
	switch {
	case goldRelated && quote != nil:
		return priceBlock(quote, city)
	case goldRelated:
		return Unavailable
	default:
		return Deferral
	}
}

func priceBlock(quote *marketModel.Quote, city string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today's Gold Rates in %s (approx):\n\n", city)
	for _, purity := range marketModel.Purities {
		fmt.Fprintf(&b, "%s: %.2f PKR per gram\n", purity, quote.Variants[purity])
	}
	b.WriteString("\nNote: Rates may slightly vary across cities and jewelers.")
	return b.String()
}
