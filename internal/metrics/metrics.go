// Package metrics exposes the board statistics as Prometheus gauges.
package metrics

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"taskflow/internal/filter"
)

// StatsSource yields the current board statistics.
type StatsSource interface {
	Stats(ctx context.Context) (filter.Stats, error)
}

// StatsCollector is a prometheus.Collector that recomputes the statistics
// on every collection rather than tracking them incrementally.
type StatsCollector struct {
	src StatsSource

	tasks   *prometheus.Desc
	overdue *prometheus.Desc
	errors  prometheus.Counter
}

// NewStatsCollector creates a collector reading from src.
func NewStatsCollector(src StatsSource) *StatsCollector {
	return &StatsCollector{
		src: src,
		tasks: prometheus.NewDesc(
			"taskflow_tasks",
			"Number of tasks by status",
			[]string{"status"}, nil,
		),
		overdue: prometheus.NewDesc(
			"taskflow_tasks_overdue",
			"Number of tasks past their due date and not completed",
			nil, nil,
		),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskflow_stats_errors_total",
			Help: "Number of failed statistics collections",
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tasks
	ch <- c.overdue
	c.errors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	s, err := c.src.Stats(context.Background())
	if err != nil {
		c.errors.Inc()
		c.errors.Collect(ch)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(s.Total), "all")
	ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(s.Pending), "pending")
	ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(s.InProgress), "in-progress")
	ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(s.Completed), "completed")
	ch <- prometheus.MustNewConstMetric(c.overdue, prometheus.GaugeValue, float64(s.Overdue))
	c.errors.Collect(ch)
}

// NewRegistry returns a registry with a StatsCollector for src registered.
func NewRegistry(src StatsSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewStatsCollector(src))
	return reg
}

// WriteText gathers reg and writes it in the Prometheus text format.
func WriteText(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
