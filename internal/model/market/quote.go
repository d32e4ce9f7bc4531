package market

import "math"

// Purity is a gold fineness grade priced relative to 24K.
type Purity string

const (
	Karat24 Purity = "24K"
	Karat22 Purity = "22K"
	Karat21 Purity = "21K"
)

// Purities lists the quoted grades in display order.
var Purities = []Purity{Karat24, Karat22, Karat21}

// multipliers are fixed factors applied to the 24K local price.
var multipliers = map[Purity]float64{
	Karat24: 1.0,
	Karat22: 0.9167,
	Karat21: 0.875,
}

// Quote is a derived per-request snapshot of gold pricing. It is recomputed
// on every request and never persisted.
type Quote struct {
	PriceUSD   float64
	PriceLocal float64
	Variants   map[Purity]float64
}

// NewQuote derives the local-currency price and per-purity variants from a
// USD spot price and a USD-to-local conversion rate. Variant prices are
// rounded to two decimals.
func NewQuote(priceUSD, usdToLocal float64) Quote {
	local := priceUSD * usdToLocal
	variants := make(map[Purity]float64, len(multipliers))
	for purity, factor := range multipliers {
		variants[purity] = round2(local * factor)
	}
	return Quote{
		PriceUSD:   priceUSD,
		PriceLocal: local,
		Variants:   variants,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
