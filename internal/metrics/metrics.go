// Package metrics 提供Prometheus监控指标
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coreplanx",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP请求总数",
	}, []string{"method", "path", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coreplanx",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP请求处理耗时",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}, []string{"method", "path"})

	solvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coreplanx",
		Subsystem: "solver",
		Name:      "solves_total",
		Help:      "按模式与状态统计的求解次数",
	}, []string{"mode", "status"})

	solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coreplanx",
		Subsystem: "solver",
		Name:      "solve_duration_seconds",
		Help:      "求解耗时",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
	}, []string{"mode"})

	decisionVars = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coreplanx",
		Subsystem: "solver",
		Name:      "decision_variables",
		Help:      "单次求解的决策变量数",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, solvesTotal, solveDuration, decisionVars)
}

// RecordRequestMetrics 记录HTTP请求指标
func RecordRequestMetrics(method, path string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSolve 记录一次求解
func RecordSolve(mode, status string, totalVars int, duration time.Duration) {
	solvesTotal.WithLabelValues(mode, status).Inc()
	solveDuration.WithLabelValues(mode).Observe(duration.Seconds())
	decisionVars.WithLabelValues(mode).Observe(float64(totalVars))
}

// Handler 返回Prometheus指标端点处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
