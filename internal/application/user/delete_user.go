package user

import (
	"context"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// DeleteUserUseCase 删除用户用例
type DeleteUserUseCase struct {
	userService user.Service
}

// NewDeleteUserUseCase 创建删除用例
func NewDeleteUserUseCase(userService user.Service) *DeleteUserUseCase {
	return &DeleteUserUseCase{userService: userService}
}

// Execute 执行删除，返回被删除用户的快照
// 用户不存在时返回user.ErrUserNotFound
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) (*UserDTO, error) {
	u, err := uc.userService.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(u)
	return &dto, nil
}
