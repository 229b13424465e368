package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteRequestErrors counts remote API requests that failed at the
	// transport layer, by HTTP method.
	RemoteRequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_remote_request_errors_total",
		Help: "Total number of remote API transport failures by method",
	}, []string{"method"})

	// FeedCacheHits counts offline feed snapshot reads that found a snapshot.
	FeedCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_feed_cache_hits_total",
		Help: "Total number of feed snapshot cache hits",
	})

	// FeedCacheMisses counts offline feed snapshot reads that came back empty.
	FeedCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_feed_cache_misses_total",
		Help: "Total number of feed snapshot cache misses",
	})

	// SessionStoreErrors counts Redis failures in the session store by
	// operation.
	SessionStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_session_store_errors_total",
		Help: "Total number of session store errors by operation",
	}, []string{"operation"})

	// RateLimitRejections counts requests rejected by the rate limiter, by
	// resource name.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_rate_limit_rejections_total",
		Help: "Total number of rate-limited requests by resource",
	}, []string{"resource"})
)
