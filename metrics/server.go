package metrics

import (
	"expvar"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Expvar metrics (legacy)
	ChatMessageReceivedCount = expvar.NewInt("chat_message_received_count")
	ChatReplySentCount       = expvar.NewInt("chat_reply_sent_count")
	ExactMatchCount          = expvar.NewInt("faq_exact_match_count")
	FuzzyMatchCount          = expvar.NewInt("faq_fuzzy_match_count")
	NoMatchCount             = expvar.NewInt("faq_no_match_count")
	CatalogFallbackCount     = expvar.NewInt("catalog_fallback_count")
	ConversationLogFailCount = expvar.NewInt("conversation_log_fail_count")

	// Prometheus metrics with labels
	EmotionDetectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_detected_total",
			Help: "Total number of classified messages by detected emotion",
		},
		[]string{"emotion"},
	)

	FAQMatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faq_match_total",
			Help: "Total number of FAQ match attempts by outcome (exact, fuzzy, none)",
		},
		[]string{"outcome"},
	)

	FAQMatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "faq_match_score",
			Help:    "Distribution of matcher scores across chat messages",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	ChatRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chat_request_duration_seconds",
			Help:    "Duration of chat request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

type Server struct {
	*http.Server
}

func SetupServer() *Server {

	// pprof is setup by importing the net/http/pprof package
	server := &http.Server{
		Addr:         ":6060",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// setup expvar cache
	ChatMessageReceivedCount.Set(0)
	ChatReplySentCount.Set(0)
	ExactMatchCount.Set(0)
	FuzzyMatchCount.Set(0)
	NoMatchCount.Set(0)
	CatalogFallbackCount.Set(0)
	ConversationLogFailCount.Set(0)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewExpvarCollector(
			map[string]*prometheus.Desc{
				"chat_message_received_count": prometheus.NewDesc("chat_message_received_count", "number of chat messages received", nil, nil),
				"chat_reply_sent_count":       prometheus.NewDesc("chat_reply_sent_count", "number of chat replies sent", nil, nil),
				"faq_exact_match_count":       prometheus.NewDesc("faq_exact_match_count", "number of exact-phase FAQ matches", nil, nil),
				"faq_fuzzy_match_count":       prometheus.NewDesc("faq_fuzzy_match_count", "number of fuzzy-phase FAQ matches above threshold", nil, nil),
				"faq_no_match_count":          prometheus.NewDesc("faq_no_match_count", "number of messages with no usable FAQ match", nil, nil),
				"catalog_fallback_count":      prometheus.NewDesc("catalog_fallback_count", "number of times the static catalog fallback was served", nil, nil),
				"conversation_log_fail_count": prometheus.NewDesc("conversation_log_fail_count", "number of failed conversation log writes", nil, nil),
			},
		),
		EmotionDetectedTotal,
		FAQMatchTotal,
		FAQMatchScore,
		ChatRequestDuration,
	)

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.HandleFunc("/healthz", healthzHandler)
	return &Server{server}
}

// healthzHandler returns a simple health check response
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Run() {
	_ = s.ListenAndServe()
}
