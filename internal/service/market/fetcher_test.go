package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/obaidAfridi75/Afridibot-repo/internal/config"
	"github.com/obaidAfridi75/Afridibot-repo/internal/metrics"
)

func newTestFetcher(goldURL, rateURL string, timeout time.Duration) *Fetcher {
	cfg := config.MarketConfig{
		GoldAPIURL: goldURL,
		GoldAPIKey: "test-token",
		RateURL:    rateURL,
		Timeout:    timeout,
	}
	return NewFetcher(cfg, metrics.New(prometheus.NewRegistry()))
}

func TestSpotPriceSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-access-token"); got != "test-token" {
			t.Errorf("missing access token header, got %q", got)
		}
		w.Write([]byte(`{"price": 74.25}`))
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, time.Second)
	result := f.SpotPrice(context.Background())

	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if result.PriceUSD != 74.25 {
		t.Fatalf("unexpected price: %f", result.PriceUSD)
	}
}

func TestSpotPriceNon200IsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, time.Second)
	if result := f.SpotPrice(context.Background()); result.Status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", result.Status)
	}
}

func TestSpotPriceMissingFieldIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, time.Second)
	if result := f.SpotPrice(context.Background()); result.Status != StatusMalformed {
		t.Fatalf("expected malformed, got %s", result.Status)
	}
}

func TestSpotPriceTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, 20*time.Millisecond)
	if result := f.SpotPrice(context.Background()); result.Status != StatusTimeout {
		t.Fatalf("expected timeout, got %s", result.Status)
	}
}

func TestConversionRateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tether":{"pkr":283.5}}`))
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, time.Second)
	result := f.ConversionRate(context.Background())

	if result.Status != StatusOK {
		t.Fatalf("expected ok, got %s", result.Status)
	}
	if result.Rate != 283.5 {
		t.Fatalf("unexpected rate: %f", result.Rate)
	}
}

func TestConversionRateTimeoutFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, 20*time.Millisecond)
	result := f.ConversionRate(context.Background())

	if result.Status != StatusTimeout {
		t.Fatalf("expected timeout, got %s", result.Status)
	}
	if result.Rate != FallbackRate {
		t.Fatalf("expected fallback rate %d, got %f", FallbackRate, result.Rate)
	}
}

func TestConversionRateMalformedFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	f := newTestFetcher(server.URL, server.URL, time.Second)
	result := f.ConversionRate(context.Background())

	if result.Status != StatusMalformed {
		t.Fatalf("expected malformed, got %s", result.Status)
	}
	if result.Rate != FallbackRate {
		t.Fatalf("expected fallback rate %d, got %f", FallbackRate, result.Rate)
	}
}
