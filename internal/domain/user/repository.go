package user

import (
	"context"
)

// Repository 用户仓储接口
// 设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/postgres层
// 3. domain层不依赖任何外部框架（GORM等），便于单元测试（Mock此接口）
type Repository interface {
	// List 按主键顺序返回全部用户
	List(ctx context.Context) ([]*User, error)

	// FindByID 根据ID查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail 根据邮箱查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户，回填生成的ID与时间戳
	// 邮箱唯一索引冲突时返回ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// Update 整体覆写ID对应行的name/email/age三个字段
	// 没有匹配行时返回ErrUserNotFound；邮箱冲突返回ErrEmailDuplicate
	Update(ctx context.Context, user *User) error

	// Delete 物理删除，返回被删除行的快照
	// 如果不存在，返回ErrUserNotFound
	Delete(ctx context.Context, id int64) (*User, error)
}
