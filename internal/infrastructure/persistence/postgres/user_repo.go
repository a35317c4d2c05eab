package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/usercenter/internal/domain/user"
	apperrors "github.com/xiebiao/usercenter/pkg/errors"
)

// userRepository 用户仓储实现（PostgreSQL）
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库特定错误（唯一索引冲突、记录不存在）转换为领域错误，
//    其余错误包装为内部错误，细节只进日志不出接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// List 按主键顺序返回全部用户
func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Internal Server Error")
	}

	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, toEntity(&models[i]))
	}
	return users, nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "Internal Server Error")
	}
	return toEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户（唯一索引，走索引查询）
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "Internal Server Error")
	}
	return toEntity(&model), nil
}

// Create 创建用户
// 唯一索引冲突（并发创建穿过Service层预检时）转换为ErrEmailDuplicate
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "Internal Server Error")
	}

	// 回填自增ID与时间戳（GORM自动填充）
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 整体覆写name/email/age三个字段
// 使用map更新保证零值（""/0）也会被写入，不会被GORM的零值跳过规则吞掉
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":  u.Name,
			"email": u.Email,
			"age":   u.Age,
		})

	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(result.Error, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete 物理删除，返回被删除行的快照
func (r *userRepository) Delete(ctx context.Context, id int64) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "Internal Server Error")
	}

	result := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		// 查到之后被并发删除
		return nil, user.ErrUserNotFound
	}
	return toEntity(&model), nil
}

// =========================================
// 辅助函数
// =========================================

// toEntity GORM模型 → 领域实体
func toEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Age:       model.Age,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// isDuplicateError 判断是否为唯一索引冲突
// TranslateError开启后GORM返回ErrDuplicatedKey；
// 兼容检查PostgreSQL的错误文案（SQLSTATE 23505）
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
