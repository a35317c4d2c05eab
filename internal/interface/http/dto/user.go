package dto

// HTTP层DTO
// 设计说明：
// 1. 每个操作一个显式的请求结构体，binding tag即该操作的校验规则集
// 2. 创建与更新的规则差异：创建三个字段必填，更新三个字段可选，
//    但出现时必须满足与创建相同的约束（指针字段区分"缺省"与"零值"）
// 3. 校验失败文案由消息表提供，key格式为"字段.规则"

// CreateUserRequest 创建用户请求
// Age用指针：required校验的是字段是否出现，0是合法年龄
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Age   *int   `json:"age" binding:"required,gte=0"`
}

// UpdateUserRequest 更新用户请求
// 三个字段均可选；出现时约束与创建一致。
// 注意：缺省字段不回读旧值——更新是整体覆写，缺省即零值
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	Age   *int    `json:"age" binding:"omitempty,gte=0"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// CreateUserMessages 创建操作的校验文案表
var CreateUserMessages = map[string]string{
	"name.required":  "Name is required",
	"name.type":      "Name is required",
	"email.required": "Valid email is required",
	"email.email":    "Valid email is required",
	"email.type":     "Valid email is required",
	"age.required":   "Age must be a positive integer",
	"age.gte":        "Age must be a positive integer",
	"age.type":       "Age must be a positive integer",
}

// UpdateUserMessages 更新操作的校验文案表
var UpdateUserMessages = map[string]string{
	"name.min":    "Name cannot be empty",
	"name.type":   "Name cannot be empty",
	"email.email": "Email must be valid",
	"email.type":  "Email must be valid",
	"age.gte":     "Age must be a positive integer",
	"age.type":    "Age must be a positive integer",
}
