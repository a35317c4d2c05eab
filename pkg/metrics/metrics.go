// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速记：
// - Counter（只增不减）：请求总数、错误总数，以_total结尾
// - Gauge（可增可减）：处理中的请求数
// - Histogram（分布）：请求耗时，自动计算P50/P90/P99，以单位结尾
//
// 使用方式：
// 1. 启动时调用一次InitMetrics()注册指标
// 2. HTTP中间件记录请求指标（见interface/http/middleware）
// 3. 通过 GET /metrics 暴露给Prometheus抓取
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// UsersCreatedTotal 用户创建成功总数（Counter）
	UsersCreatedTotal prometheus.Counter

	// UsersDeletedTotal 用户删除成功总数（Counter）
	UsersDeletedTotal prometheus.Counter

	// UserConflictsTotal 邮箱冲突被拒绝的创建请求总数（Counter）
	UserConflictsTotal prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，使用promauto自动注册到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests currently being served",
		},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created",
		},
	)

	UsersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_deleted_total",
			Help: "Total number of users deleted",
		},
	)

	UserConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_email_conflicts_total",
			Help: "Total number of create requests rejected for duplicate email",
		},
	)
}
