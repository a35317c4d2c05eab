package user

import (
	apperrors "github.com/xiebiao/usercenter/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")

	// ErrEmailDuplicate 邮箱已被使用
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "Email already exists")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "Valid email is required")

	// ErrEmptyName 名称为空
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidParams, "Name is required")

	// ErrInvalidAge 年龄为负数
	ErrInvalidAge = apperrors.New(apperrors.ErrCodeInvalidParams, "Age must be a positive integer")
)
