package user

import (
	"context"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// ListUsersUseCase 用户列表查询用例
// 设计说明：无过滤、无分页，按存储顺序（主键）返回全部用户
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建列表查询用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// Execute 执行列表查询
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserDTO, error) {
	users, err := uc.userService.List(ctx)
	if err != nil {
		return nil, err
	}

	// 领域实体 → 应用层DTO
	// 注意返回空切片而不是nil，保证JSON序列化为[]而不是null
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	return out, nil
}

// UserDTO 用户数据传输对象
// 说明：五个用例共享的输出结构，不直接暴露领域实体
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// toDTO 领域实体 → DTO
func toDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
	}
}
