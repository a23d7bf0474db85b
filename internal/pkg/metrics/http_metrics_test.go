// File: internal/pkg/metrics/http_metrics_test.go
package metrics

import (
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPMetrics(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
	}{
		{
			name:      "创建 HTTP 指标收集器 - 成功",
			namespace: "test",
		},
		{
			name:      "创建 HTTP 指标收集器 - 空 namespace",
			namespace: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 使用自定义注册表避免冲突
			reg := prometheus.NewRegistry()
			metrics := NewHTTPMetricsWithRegistry(tt.namespace, reg)

			assert.NotNil(t, metrics)
			assert.NotNil(t, metrics.RequestsTotal)
			assert.NotNil(t, metrics.RequestDuration)
			assert.NotNil(t, metrics.RequestsInProgress)
		})
	}
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		method     string
		statusCode int
		duration   time.Duration
	}{
		{
			name:       "记录 GET 请求 - 200",
			route:      "/api/boss-data/:id",
			method:     "GET",
			statusCode: 200,
			duration:   100 * time.Millisecond,
		},
		{
			name:       "记录 POST 请求 - 201",
			route:      "/api/giftcode",
			method:     "POST",
			statusCode: 201,
			duration:   200 * time.Millisecond,
		},
		{
			name:       "记录 PUT 请求 - 404",
			route:      "/api/tab-shop/:id",
			method:     "PUT",
			statusCode: 404,
			duration:   50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			metrics := NewHTTPMetricsWithRegistry("test", reg)

			// 记录请求
			metrics.RecordRequest(tt.route, tt.method, tt.statusCode, tt.duration)

			// 验证 counter 增加
			statusCode := strconv.Itoa(tt.statusCode)
			count := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(tt.route, tt.method, statusCode))
			assert.Equal(t, float64(1), count)

			// Histogram 会自动创建 _count, _sum, _bucket 指标
			// 这里简单验证 RecordRequest 不会 panic 即可
			assert.NotNil(t, metrics.RequestDuration)
		})
	}
}

func TestHTTPMetrics_InProgress(t *testing.T) {
	t.Run("当前进行中的请求数", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewHTTPMetricsWithRegistry("test", reg)

		// 初始值应为 0
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RequestsInProgress))

		// 增加进行中的请求
		metrics.IncInProgress()
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RequestsInProgress))

		metrics.IncInProgress()
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.RequestsInProgress))

		// 减少进行中的请求
		metrics.DecInProgress()
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RequestsInProgress))

		metrics.DecInProgress()
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RequestsInProgress))
	})
}

func TestHTTPMetrics_ConcurrentSafety(t *testing.T) {
	t.Run("并发安全测试", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewHTTPMetricsWithRegistry("test", reg)

		// 启动多个 goroutine 并发记录指标
		done := make(chan bool)
		numGoroutines := 10
		numIterations := 100

		for i := 0; i < numGoroutines; i++ {
			go func() {
				for j := 0; j < numIterations; j++ {
					metrics.RecordRequest("/api/test", "GET", 200, 100*time.Millisecond)
					metrics.IncInProgress()
					metrics.DecInProgress()
				}
				done <- true
			}()
		}

		// 等待所有 goroutine 完成
		for i := 0; i < numGoroutines; i++ {
			<-done
		}

		// 验证总计数正确
		totalCount := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/api/test", "GET", "200"))
		assert.Equal(t, float64(numGoroutines*numIterations), totalCount)

		// 验证进行中的请求数归零
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RequestsInProgress))
	})
}
