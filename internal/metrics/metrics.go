package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casino"

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelGame   = "game"
	LabelAction = "action"
	LabelTag    = "tag"
	LabelType   = "type"
	LabelKind   = "kind"
)

// HTTPLatencyBuckets от 1ms до 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being served",
		},
	)
)

// Settlement Metrics
var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settled game actions",
		},
		[]string{LabelGame, LabelAction, LabelTag},
	)

	SettlementErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_errors_total",
			Help:      "Rejected or failed settlements by error kind",
		},
		[]string{LabelAction, LabelKind},
	)

	DegradedSettlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_degraded_total",
			Help:      "Settlements whose round could not be recorded",
		},
		[]string{LabelGame},
	)

	Wagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wagered_total",
			Help:      "Sum of bets",
		},
		[]string{LabelGame},
	)

	PaidOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_out_total",
			Help:      "Sum of payouts and bonuses",
		},
		[]string{LabelGame},
	)

	ObservedRTP = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "observed_rtp_percent",
			Help:      "RTP over the sliding window of recent rounds",
		},
		[]string{LabelGame},
	)

	HookErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hook_errors_total",
			Help:      "Failed post-settlement hooks",
		},
		[]string{LabelType},
	)
)
