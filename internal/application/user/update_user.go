package user

import (
	"context"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// UpdateUserUseCase 更新用户用例
// 设计说明：整体覆写语义——三个可变字段总是全部重写，
// 调用方（HTTP层）负责把缺省的可选字段填为零值
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建更新用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{userService: userService}
}

// UpdateUserRequest 更新请求（应用层DTO）
type UpdateUserRequest struct {
	ID    int64
	Name  string
	Email string
	Age   int
}

// Execute 执行更新，返回更新后的用户
// 用户不存在时返回user.ErrUserNotFound
func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) (*UserDTO, error) {
	u, err := uc.userService.Update(ctx, req.ID, req.Name, req.Email, req.Age)
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}
