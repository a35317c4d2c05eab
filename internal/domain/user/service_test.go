package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/usercenter/internal/domain/user"
)

// memoryRepository 内存版仓储，模拟唯一索引和主键生成
type memoryRepository struct {
	users  map[int64]*user.User
	nextID int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[int64]*user.User), nextID: 1}
}

func (r *memoryRepository) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, u *user.User) error {
	existing, ok := r.users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	for id, other := range r.users {
		if id != u.ID && other.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	existing.Name = u.Name
	existing.Email = u.Email
	existing.Age = u.Age
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

// TestServiceCreate 测试创建用户的业务规则
func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建并回填ID", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())

		u, err := svc.Create(ctx, "Alice", "alice@example.com", 30)
		require.NoError(t, err)
		assert.Positive(t, u.ID)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, 30, u.Age)
	})

	t.Run("重复邮箱返回冲突且不落第二行", func(t *testing.T) {
		repo := newMemoryRepository()
		svc := user.NewService(repo)

		_, err := svc.Create(ctx, "Alice", "alice@example.com", 30)
		require.NoError(t, err)

		_, err = svc.Create(ctx, "Bob", "alice@example.com", 25)
		assert.ErrorIs(t, err, user.ErrEmailDuplicate)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("年龄为0合法", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())

		u, err := svc.Create(ctx, "Baby", "baby@example.com", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, u.Age)
	})

	t.Run("非法邮箱被拒绝", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())

		_, err := svc.Create(ctx, "Alice", "not-an-email", 30)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("负年龄被拒绝", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())

		_, err := svc.Create(ctx, "Alice", "alice@example.com", -1)
		assert.ErrorIs(t, err, user.ErrInvalidAge)
	})
}

// TestServiceGet 测试按ID查询
func TestServiceGet(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newMemoryRepository())

	t.Run("不存在的ID返回NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, 9999)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("创建后可按ID取回相同字段", func(t *testing.T) {
		created, err := svc.Create(ctx, "A", "a@x.com", 5)
		require.NoError(t, err)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "A", got.Name)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, 5, got.Age)
	})
}

// TestServiceUpdate 测试整体覆写语义
func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("三个字段总是全部重写", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())
		created, err := svc.Create(ctx, "Alice", "alice@example.com", 30)
		require.NoError(t, err)

		// 模拟只想改age的调用方：name/email传零值，结果就是被清空
		updated, err := svc.Update(ctx, created.ID, "", "", 31)
		require.NoError(t, err)
		assert.Equal(t, "", updated.Name)
		assert.Equal(t, "", updated.Email)
		assert.Equal(t, 31, updated.Age)
	})

	t.Run("不存在的ID返回NotFound", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())
		_, err := svc.Update(ctx, 42, "X", "x@x.com", 1)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("改成他人邮箱返回冲突", func(t *testing.T) {
		svc := user.NewService(newMemoryRepository())
		_, err := svc.Create(ctx, "Alice", "alice@example.com", 30)
		require.NoError(t, err)
		bob, err := svc.Create(ctx, "Bob", "bob@example.com", 25)
		require.NoError(t, err)

		_, err = svc.Update(ctx, bob.ID, "Bob", "alice@example.com", 25)
		assert.ErrorIs(t, err, user.ErrEmailDuplicate)
	})
}

// TestServiceDelete 测试删除
func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newMemoryRepository())

	created, err := svc.Create(ctx, "Alice", "alice@example.com", 30)
	require.NoError(t, err)

	t.Run("删除返回被删行快照", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", deleted.Email)
	})

	t.Run("删除后不可再查询", func(t *testing.T) {
		_, err := svc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("重复删除返回NotFound", func(t *testing.T) {
		_, err := svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
