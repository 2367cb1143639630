// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型：
//   - Counter：只增不减的累计值（请求数、操作数）
//   - Gauge：可增可减的瞬时值（处理中的请求数、存储的用户数）
//   - Histogram：观测值分布（请求耗时）
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）
//
// 标签只使用有限取值的维度（method、operation、result），不要用user_id这类高基数值
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.UserOperationsTotal, map[string]string{
//	    "operation": "create",
//	    "result":    "success",
//	})
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 操作结果标签取值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// initOnce 防止重复注册
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板，如/api/v1/users/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 用户业务指标

	// UserOperationsTotal 用户操作总数（Counter）
	// 标签：operation（list/get/create/replace/patch/delete）、result（success/failure）
	UserOperationsTotal *prometheus.CounterVec

	// UserOperationDuration 用户操作耗时（Histogram）
	UserOperationDuration *prometheus.HistogramVec

	// UsersStored 当前存储的用户数（Gauge）
	UsersStored prometheus.Gauge

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange、routing_key、result
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto注册到默认Registry，多次调用只注册一次
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		UserOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_operations_total",
				Help: "用户操作总数",
			},
			[]string{"operation", "result"},
		)

		// 内存操作通常在微秒级
		UserOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "user_operation_duration_seconds",
				Help:    "用户操作耗时（秒）",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.1},
			},
			[]string{"operation"},
		)

		UsersStored = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "users_stored",
				Help: "当前存储的用户数",
			},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "消息发布总数",
			},
			[]string{"exchange", "routing_key", "result"},
		)
	})
}

// RecordUserOperation 记录一次用户操作的结果与耗时（未初始化时跳过）
func RecordUserOperation(operation string, err error, seconds float64) {
	if UserOperationsTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	IncCounterVec(UserOperationsTotal, map[string]string{
		"operation": operation,
		"result":    result,
	})
	ObserveHistogramVec(UserOperationDuration, map[string]string{"operation": operation}, seconds)
}

// SetUsersStored 设置存储的用户数（未初始化时跳过）
func SetUsersStored(n int) {
	if UsersStored == nil {
		return
	}
	UsersStored.Set(float64(n))
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
