package market

import "testing"

func TestNewQuoteVariants(t *testing.T) {
	q := NewQuote(100, 280)

	if q.PriceLocal != 28000 {
		t.Fatalf("unexpected local price: %f", q.PriceLocal)
	}
	if got := q.Variants[Karat24]; got != 28000 {
		t.Fatalf("unexpected 24K price: %f", got)
	}
	if got := q.Variants[Karat22]; got != 25667.60 {
		t.Fatalf("unexpected 22K price: %f", got)
	}
	if got := q.Variants[Karat21]; got != 24500 {
		t.Fatalf("unexpected 21K price: %f", got)
	}
}

func TestNewQuoteRoundsToTwoDecimals(t *testing.T) {
	q := NewQuote(3.333, 280.5)
	for _, purity := range Purities {
		price := q.Variants[purity]
		rounded := float64(int64(price*100+0.5)) / 100
		if price != rounded {
			t.Fatalf("%s price not rounded to 2 decimals: %v", purity, price)
		}
	}
}
