package backlogserver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	PendingListings  prometheus.Counter
	StatsQueries     prometheus.Counter
	BacklogRefreshes prometheus.Counter
}

// the default registry rejects duplicate registrations, so the counters are
// process-wide singletons
var (
	metricsSingleton     *metrics
	metricsSingletonInit sync.Once
)

func newMetrics() *metrics {
	metricsSingletonInit.Do(func() {
		m := &metrics{}

		m.PendingListings = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pending_listings",
			Help: "Number of /pending listings served",
		})
		prometheus.MustRegister(m.PendingListings)

		m.StatsQueries = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stats_queries",
			Help: "Number of /stats queries served",
		})
		prometheus.MustRegister(m.StatsQueries)

		m.BacklogRefreshes = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backlog_refreshes",
			Help: "Number of times the backlog was recomputed from the input files",
		})
		prometheus.MustRegister(m.BacklogRefreshes)

		metricsSingleton = m
	})

	return metricsSingleton
}
