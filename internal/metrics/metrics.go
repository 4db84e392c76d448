package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carshare",
			Name:      "mutation_total",
			Help:      "Count of entity mutations by operation and result.",
		},
		[]string{"entity", "op", "result"},
	)

	cacheRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carshare",
			Name:      "cache_refresh_total",
			Help:      "Count of background cache refreshes by result.",
		},
		[]string{"entity", "result"},
	)

	backupRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carshare",
			Name:      "backup_runs_total",
			Help:      "Count of completed database backup runs.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(mutations, cacheRefreshes, backupRuns)
	})
}

func IncMutation(entity, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	mutations.WithLabelValues(entity, op, result).Inc()
}

func IncCacheRefresh(entity string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	cacheRefreshes.WithLabelValues(entity, result).Inc()
}

func IncBackupRun() {
	backupRuns.Inc()
}
