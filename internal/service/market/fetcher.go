package market

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/obaidAfridi75/Afridibot-repo/internal/config"
	"github.com/obaidAfridi75/Afridibot-repo/internal/metrics"
)

// FallbackRate is the hardcoded USD→PKR rate used when the conversion
// upstream is unreachable or returns garbage.
const FallbackRate = 280

// Status classifies the outcome of one outbound call. Degraded outcomes are
// typed rather than swallowed so each fallback path is testable on its own.
type Status string

const (
	StatusOK          Status = "ok"
	StatusTimeout     Status = "timeout"
	StatusUnavailable Status = "unavailable"
	StatusMalformed   Status = "malformed"
)

// SpotResult carries the gold spot price in USD per gram, valid only when
// Status is StatusOK.
type SpotResult struct {
	Status   Status
	PriceUSD float64
}

// RateResult carries a USD→PKR rate. Rate is always usable: on any non-OK
// status it holds FallbackRate.
type RateResult struct {
	Status Status
	Rate   float64
}

// Fetcher retrieves live market data from the two price upstreams. Calls are
// synchronous, sequential, single-attempt, and bounded by the configured
// per-call timeout.
type Fetcher struct {
	client  *http.Client
	goldURL string
	goldKey string
	rateURL string
	metrics *metrics.Metrics
}

// NewFetcher builds a Fetcher from market configuration.
func NewFetcher(cfg config.MarketConfig, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		goldURL: cfg.GoldAPIURL,
		goldKey: cfg.GoldAPIKey,
		rateURL: cfg.RateURL,
		metrics: m,
	}
}

// SpotPrice fetches the gold spot price in USD. Every failure degrades to a
// non-OK status; it never returns an error to the caller.
func (f *Fetcher) SpotPrice(ctx context.Context) SpotResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.goldURL, nil)
	if err != nil {
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceGoldAPI).Inc()
		return SpotResult{Status: StatusUnavailable}
	}
	req.Header.Set("x-access-token", f.goldKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		status := classifyTransportError(err)
		log.Printf("[market] gold spot fetch failed (%s): %v", status, err)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceGoldAPI).Inc()
		return SpotResult{Status: status}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[market] gold spot upstream returned %d", resp.StatusCode)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceGoldAPI).Inc()
		return SpotResult{Status: StatusUnavailable}
	}

	var body struct {
		Price *float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Price == nil {
		log.Printf("[market] gold spot response malformed: %v", err)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceGoldAPI).Inc()
		return SpotResult{Status: StatusMalformed}
	}

	return SpotResult{Status: StatusOK, PriceUSD: *body.Price}
}

// ConversionRate fetches the live USDT→PKR rate, substituting FallbackRate on
// any failure.
func (f *Fetcher) ConversionRate(ctx context.Context) RateResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.rateURL, nil)
	if err != nil {
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceCoinGecko).Inc()
		return RateResult{Status: StatusUnavailable, Rate: FallbackRate}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		status := classifyTransportError(err)
		log.Printf("[market] conversion rate fetch failed (%s): %v", status, err)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceCoinGecko).Inc()
		return RateResult{Status: status, Rate: FallbackRate}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[market] conversion rate upstream returned %d", resp.StatusCode)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceCoinGecko).Inc()
		return RateResult{Status: StatusUnavailable, Rate: FallbackRate}
	}

	var body struct {
		Tether struct {
			PKR *float64 `json:"pkr"`
		} `json:"tether"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Tether.PKR == nil {
		log.Printf("[market] conversion rate response malformed: %v", err)
		f.metrics.UpstreamFailures.WithLabelValues(metrics.SourceCoinGecko).Inc()
		return RateResult{Status: StatusMalformed, Rate: FallbackRate}
	}

	return RateResult{Status: StatusOK, Rate: *body.Tether.PKR}
}

func classifyTransportError(err error) Status {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return StatusTimeout
	}
	return StatusUnavailable
}
