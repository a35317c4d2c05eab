package user

import (
	"context"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// CreateUserUseCase 创建用户用例
type CreateUserUseCase struct {
	userService user.Service
}

// NewCreateUserUseCase 创建用例
func NewCreateUserUseCase(userService user.Service) *CreateUserUseCase {
	return &CreateUserUseCase{userService: userService}
}

// CreateUserRequest 创建请求（应用层DTO，纯数据结构）
type CreateUserRequest struct {
	Name  string
	Email string
	Age   int
}

// Execute 执行创建
// 邮箱已存在时返回user.ErrEmailDuplicate
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := uc.userService.Create(ctx, req.Name, req.Email, req.Age)
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}
