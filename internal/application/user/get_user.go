package user

import (
	"context"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// GetUserUseCase 按ID查询用户用例
type GetUserUseCase struct {
	userService user.Service
}

// NewGetUserUseCase 创建查询用例
func NewGetUserUseCase(userService user.Service) *GetUserUseCase {
	return &GetUserUseCase{userService: userService}
}

// Execute 执行查询
// 用户不存在时返回user.ErrUserNotFound
func (uc *GetUserUseCase) Execute(ctx context.Context, id int64) (*UserDTO, error) {
	u, err := uc.userService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}
