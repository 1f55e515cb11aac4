package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors rdscapd exposes at /metrics:
// group throughput, block error counts, the synchronizer's current
// state, and a smoothed BLER gauge per spec §4.3/§4.4's diagnostics.
type Metrics struct {
	groupsTotal      *prometheus.CounterVec
	blockErrorsTotal prometheus.Counter
	syncState        prometheus.Gauge
	bler             prometheus.Gauge
}

// NewMetrics registers and returns a fresh Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		groupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rds_groups_total",
			Help: "Groups dispatched, labeled by group type.",
		}, []string{"group_type"}),
		blockErrorsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rds_block_errors_total",
			Help: "Blocks that arrived with errors, corrected or not.",
		}),
		syncState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rds_sync_state",
			Help: "1 if the block synchronizer is IN-SYNC, 0 if OUT-OF-SYNC.",
		}),
		bler: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rds_bler",
			Help: "Smoothed block error rate attached to the most recent group.",
		}),
	}
}

func (m *Metrics) observeGroup(typ string, numErrors int, bler float64, synced bool) {
	m.groupsTotal.WithLabelValues(typ).Inc()
	for i := 0; i < numErrors; i++ {
		m.blockErrorsTotal.Inc()
	}
	m.bler.Set(bler)
	if synced {
		m.syncState.Set(1)
	} else {
		m.syncState.Set(0)
	}
}
