package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the chat pipeline.
type Metrics struct {
	ChatRequests     prometheus.Counter
	ChatFailures     prometheus.Counter
	UpstreamFailures *prometheus.CounterVec
	LLMFallbacks     prometheus.Counter
}

// Upstream source labels.
const (
	SourceGoldAPI   = "gold_api"
	SourceCoinGecko = "coingecko"
	SourceGemini    = "gemini"
)

// New registers the chat metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChatRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Chat messages accepted for processing.",
		}),
		ChatFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "chat_failures_total",
			Help: "Chat requests that ended in a server error.",
		}),
		UpstreamFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_upstream_failures_total",
			Help: "Degraded upstream calls by source.",
		}, []string{"source"}),
		LLMFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "chat_llm_fallbacks_total",
			Help: "Replies served from the composed text because the model returned nothing.",
		}),
	}
}
