package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты обработки колбэка для метки result.
const (
	ResultApplied          = "applied"
	ResultAlreadyProcessed = "already_processed"
	ResultPending          = "pending"
	ResultRejected         = "rejected"
	ResultError            = "error"
)

var (
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	CallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Payment gateway callbacks by kind, provider and result.",
		},
		[]string{"kind", "provider", "result"},
	)

	LedgerMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_mutations_total",
			Help: "Balance mutations written to the ledger.",
		},
		[]string{"type", "ref_type"},
	)

	// SideEffectFailuresTotal ошибки после коммита: постановка задачи выдачи, публикация события.
	// Состояние в базе уже зафиксировано, нужен алерт.
	SideEffectFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_commit_failures_total",
			Help: "Failures of side effects executed after a committed transition.",
		},
		[]string{"effect"},
	)

	FulfillmentRedispatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfillment_redispatched_total",
			Help: "Paid orders re-enqueued for fulfillment by the dispatcher.",
		},
	)

	initOnce sync.Once
)

var Handler = promhttp.Handler

// Init регистрирует метрики в реестре по умолчанию. Повторные вызовы ничего не делают.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			HTTPLatency,
			CallbacksTotal,
			LedgerMutationsTotal,
			SideEffectFailuresTotal,
			FulfillmentRedispatchedTotal,
		)
	})
}
