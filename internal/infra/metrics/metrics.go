package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

var (
	// HTTP 请求计数
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTP 请求耗时
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	// 附件上传结果
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Attachment uploads by attachment and outcome",
		},
		[]string{"attachment", "status"},
	)

	// 对象存储调用结果
	BlobOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "blob_operations_total",
			Help:      "Blob store calls by driver, operation and outcome",
		},
		[]string{"driver", "operation", "status"},
	)

	// 补偿删除结果
	CompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "compensating_deletes_total",
			Help:      "Compensating deletes issued after a failed operation",
		},
		[]string{"status"},
	)

	// 孤儿文件清理结果
	OrphanDeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "orphan_deletes_total",
			Help:      "Replaced attachment files deleted after commit",
		},
		[]string{"status"},
	)

	// 工作单元提交结果
	CommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uow",
			Name:      "commits_total",
			Help:      "Unit of work commits by outcome",
		},
		[]string{"status"},
	)

	// 事件发布结果
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events handed to the broker",
		},
		[]string{"event", "status"},
	)

	// 编码回调处理结果
	EncodingResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "encoding",
			Name:      "results_total",
			Help:      "Encoding notifications handled by status and outcome",
		},
		[]string{"status", "outcome"},
	)
)
