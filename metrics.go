// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package buddy

import "github.com/prometheus/client_golang/prometheus"

// The engine is a prometheus.Collector: register it to expose the node table,
// garbage collection and resize counters (cache counters are not exported),
// e.g.
//
//	prometheus.MustRegister(b)

var (
	allocatedDesc = prometheus.NewDesc("buddy_nodes_allocated",
		"Number of slots allocated in the node table.", nil, nil)
	freeDesc = prometheus.NewDesc("buddy_nodes_free",
		"Number of free slots in the node table.", nil, nil)
	producedDesc = prometheus.NewDesc("buddy_nodes_produced_total",
		"Total number of nodes ever produced.", nil, nil)
	varnumDesc = prometheus.NewDesc("buddy_variables",
		"Number of defined variables.", nil, nil)
	gcDesc = prometheus.NewDesc("buddy_gc_total",
		"Number of garbage collections.", nil, nil)
	gcTimeDesc = prometheus.NewDesc("buddy_gc_seconds_total",
		"Total time spent in garbage collections.", nil, nil)
	resizeDesc = prometheus.NewDesc("buddy_resize_total",
		"Number of node table growths.", nil, nil)
)

// Describe implements prometheus.Collector.
func (b *BDD) Describe(ch chan<- *prometheus.Desc) {
	ch <- allocatedDesc
	ch <- freeDesc
	ch <- producedDesc
	ch <- varnumDesc
	ch <- gcDesc
	ch <- gcTimeDesc
	ch <- resizeDesc
}

// Collect implements prometheus.Collector.
func (b *BDD) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(allocatedDesc, prometheus.GaugeValue, float64(len(b.nodes)))
	ch <- prometheus.MustNewConstMetric(freeDesc, prometheus.GaugeValue, float64(b.freenum))
	ch <- prometheus.MustNewConstMetric(producedDesc, prometheus.CounterValue, float64(b.produced))
	ch <- prometheus.MustNewConstMetric(varnumDesc, prometheus.GaugeValue, float64(b.varnum))
	ch <- prometheus.MustNewConstMetric(gcDesc, prometheus.CounterValue, float64(len(b.gchistory)))
	gctime := 0.0
	for _, g := range b.gchistory {
		gctime += g.Time.Seconds()
	}
	ch <- prometheus.MustNewConstMetric(gcTimeDesc, prometheus.CounterValue, gctime)
	ch <- prometheus.MustNewConstMetric(resizeDesc, prometheus.CounterValue, float64(b.resizes))
}
