package user

import (
	"context"
	"errors"
	"regexp"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务规则（邮箱唯一性）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// List 查询全部用户
	List(ctx context.Context) ([]*User, error)

	// Get 根据ID查询用户
	Get(ctx context.Context, id int64) (*User, error)

	// Create 创建用户
	// 邮箱已存在时返回ErrEmailDuplicate
	Create(ctx context.Context, name, email string, age int) (*User, error)

	// Update 整体覆写用户的三个可变字段，返回更新后的用户
	Update(ctx context.Context, id int64, name, email string, age int) (*User, error)

	// Delete 删除用户，返回被删除行的快照
	Delete(ctx context.Context, id int64) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建用户
// 业务规则：
// 1. 基础字段校验（HTTP层已校验过，这里是第二层防护）
// 2. 邮箱唯一性先查后插：已存在则直接返回ErrEmailDuplicate，
//    与数据库UNIQUE索引双保险——并发窗口内的重复插入由索引兜底，
//    Repository会把唯一索引冲突同样映射为ErrEmailDuplicate
func (s *service) Create(ctx context.Context, name, email string, age int) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if age < 0 {
		return nil, ErrInvalidAge
	}

	// 先查重，保持"Email already exists"在插入前返回
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailDuplicate
	}

	u := NewUser(name, email, age)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update 整体覆写
// 注意：不做字段级合并——HTTP层的可选字段缺省为零值后原样写入，
// 三个字段总是全部重写（与历史行为保持一致，见DESIGN.md）
func (s *service) Update(ctx context.Context, id int64, name, email string, age int) (*User, error) {
	u := &User{ID: id, Name: name, Email: email, Age: age}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	// 重新读取以拿到存储层维护的时间戳
	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) (*User, error) {
	return s.repo.Delete(ctx, id)
}

// emailRegexp 简化的邮箱格式校验（完整校验由HTTP层validator完成）
var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
