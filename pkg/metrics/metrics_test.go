package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if UsersCreatedTotal == nil {
		t.Error("UsersCreatedTotal未初始化")
	}

	// 重复初始化不应panic（promauto重复注册会panic，靠initialized防护）
	InitMetrics()
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	initial := getCounterValue(t, UsersCreatedTotal)

	UsersCreatedTotal.Inc()
	UsersCreatedTotal.Inc()

	value := getCounterValue(t, UsersCreatedTotal)
	if value != initial+2 {
		t.Errorf("Counter值错误: expected=%f, got=%f", initial+2, value)
	}
}

// TestCounterVec 测试带标签的Counter指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	c := HTTPRequestsTotal.WithLabelValues("GET", "/users", "200")
	before := getCounterValue(t, c.(prometheus.Counter))
	c.Inc()
	after := getCounterValue(t, c.(prometheus.Counter))

	if after != before+1 {
		t.Errorf("CounterVec值错误: expected=%f, got=%f", before+1, after)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()

	HTTPRequestsInProgress.Set(0)
	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Inc()
	HTTPRequestsInProgress.Dec()

	var m dto.Metric
	if err := HTTPRequestsInProgress.Write(&m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
	if got := m.GetGauge().GetValue(); got != 1 {
		t.Errorf("Gauge值错误: expected=1, got=%f", got)
	}
}

// getCounterValue 读取Counter当前值
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}
