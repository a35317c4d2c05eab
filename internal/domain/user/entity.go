package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. 领域实体不依赖GORM tag（infrastructure层的Repository实现负责映射）
// 2. ID由存储层生成，创建前为0
// 3. Name/Email/Age是可变字段，更新操作整体覆写（不做字段级合并）
type User struct {
	ID        int64
	Name      string
	Email     string
	Age       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// ID与时间戳由存储层回填
func NewUser(name, email string, age int) *User {
	return &User{
		Name:  name,
		Email: email,
		Age:   age,
	}
}
