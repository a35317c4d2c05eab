package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTTPStatus 测试业务错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"用户不存在映射404", ErrCodeUserNotFound, http.StatusNotFound},
		{"通用不存在映射404", ErrCodeNotFound, http.StatusNotFound},
		{"邮箱冲突映射400", ErrCodeEmailDuplicate, http.StatusBadRequest},
		{"参数错误映射400", ErrCodeInvalidParams, http.StatusBadRequest},
		{"内部错误映射500", ErrCodeInternal, http.StatusInternalServerError},
		{"数据库错误映射500", ErrCodeDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.code))
		})
	}
}

// TestWrapAndUnwrap 测试错误包装与errors.As提取
func TestWrapAndUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := Wrap(inner, "Internal Server Error")

	// 包装后仍可提取内部错误
	assert.True(t, errors.Is(wrapped, inner))

	// 通过fmt.Errorf再包一层也能识别
	chained := fmt.Errorf("query users: %w", wrapped)
	assert.True(t, IsAppError(chained))

	got := GetAppError(chained)
	assert.Equal(t, ErrCodeInternal, got.Code)
	// 客户端可见信息不包含内部错误内容
	assert.NotContains(t, got.Message, "connection refused")
}

// TestGetAppError 非AppError应包装为内部错误
func TestGetAppError(t *testing.T) {
	got := GetAppError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, got.Code)
	assert.Equal(t, "Internal Server Error", got.Message)
}
