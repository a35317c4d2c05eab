package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 本服务对外是纯REST风格：HTTP状态码即结果语义，成功时响应体就是资源本体，
// 所以辅助函数返回状态码+原始JSON，由各测试自行解析成对应结构

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:3000"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Result HTTP调用结果
type Result struct {
	Status int
	Body   json.RawMessage
}

// UserData 用户响应数据
type UserData struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// ErrorData 错误响应数据
type ErrorData struct {
	Error string `json:"error"`
}

// ViolationsData 校验失败响应数据
type ViolationsData struct {
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// RequireServer 检查服务是否在运行，未启动时跳过测试
//
// 运行方式：
//	go run ./cmd/api &        # 需要先启动PostgreSQL
//	go test -v ./test/integration/...
func RequireServer(t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL + "/ping")
	if err != nil {
		t.Skipf("服务未启动，跳过集成测试: %v", err)
	}
	defer resp.Body.Close()
}

// GenerateTestEmail 生成带时间戳的测试邮箱，避免唯一索引冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@example.com", prefix, time.Now().UnixNano())
}

func do(t *testing.T, method, url string, data interface{}) *Result {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	return &Result{Status: resp.StatusCode, Body: raw}
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Result {
	return do(t, http.MethodPost, url, data)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Result {
	return do(t, http.MethodGet, url, nil)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Result {
	return do(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) *Result {
	return do(t, http.MethodDelete, url, nil)
}
