package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/usercenter/pkg/errors"
	"github.com/xiebiao/usercenter/pkg/validation"
)

// 统一响应辅助函数
// 设计说明：
// 1. 本服务对外是纯REST风格：HTTP状态码即结果语义，成功时直接返回资源JSON
// 2. 错误响应统一为 {"error": "..."}，校验失败为 {"errors": [{"field","message"},...]}
// 3. AppError的业务码通过errors.HTTPStatus映射为HTTP状态码

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 操作确认响应体（如删除成功）
type MessageBody struct {
	Message string `json:"message"`
}

// ViolationsBody 参数校验失败响应体
type ViolationsBody struct {
	Errors []validation.FieldError `json:"errors"`
}

// Success 200 + 业务数据（数据本身就是响应体，不再包一层）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 + 新建的资源
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 + 确认消息
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	user, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 非AppError会被包装为内部错误，客户端只能看到通用提示。
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(apperrors.HTTPStatus(appErr.Code), ErrorBody{Error: appErr.Message})
}

// ErrorWithStatus 指定HTTP状态码的错误响应
func ErrorWithStatus(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// Violations 400 + 字段级校验错误列表
func Violations(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, ViolationsBody{Errors: errs})
}
