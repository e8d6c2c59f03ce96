package metrics

import (
	"context"
	"fmt"

	"github.com/fieldserve/fieldserve/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type jobStatsCollector struct {
	store       store.Store
	totalJobs   *prometheus.Desc
	jobsByState *prometheus.Desc
	totalOrders *prometheus.Desc
}

func NewJobStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_jobs_%s", fieldserve, name)
	}

	return &jobStatsCollector{
		store: s,
		totalJobs: prometheus.NewDesc(
			fqName("total"),
			"Total number of jobs.",
			nil,
			prometheus.Labels{},
		),
		jobsByState: prometheus.NewDesc(
			fqName("by_status_total"),
			"Number of jobs per lifecycle status.",
			[]string{"status"},
			prometheus.Labels{},
		),
		totalOrders: prometheus.NewDesc(
			fqName("with_payment_order_total"),
			"Number of jobs with a gateway order attached.",
			nil,
			prometheus.Labels{},
		),
	}
}

func (c *jobStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalJobs
	ch <- c.jobsByState
	ch <- c.totalOrders
}

// Collect implements Collector.
func (c *jobStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("jobs_collector").Errorf("failed to collect job statistics: %s", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.totalJobs, prometheus.GaugeValue, float64(stats.TotalJobs))
	ch <- prometheus.MustNewConstMetric(c.totalOrders, prometheus.GaugeValue, float64(stats.TotalOrders))
	for status, total := range stats.TotalByStatus {
		ch <- prometheus.MustNewConstMetric(c.jobsByState, prometheus.GaugeValue, float64(total), string(status))
	}
}
