package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnhub", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "learnhub", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	DegradedResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnhub", Name: "degraded_responses_total",
		Help: "Responses served with a zero value after a storage failure",
	}, []string{"operation"})
	QuizAttemptsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "learnhub", Name: "quiz_attempts_rejected_total", Help: "Quiz attempts refused by the attempt cap",
	})
	NotificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "learnhub", Name: "notification_failures_total", Help: "Notifications that could not be stored",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "learnhub", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, DegradedResponses,
		QuizAttemptsRejected, NotificationFailures, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
