package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/usercenter/internal/infrastructure/config"
)

// NewDB 创建数据库连接池
// 设计说明：
// 1. 使用GORM v2 + postgres驱动，TranslateError开启后唯一索引冲突
//    统一转换为gorm.ErrDuplicatedKey
// 2. 连接池参数：MaxOpenConns、MaxIdleConns、ConnMaxIdleTime(30s)
// 3. 建连等待上限由DSN的connect_timeout控制(5s)
// 4. 连接池故障只影响当前请求，不会让进程退出；仅启动时连不上才算致命
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// 启动连通性检查，超时即失败
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// 表结构迁移
	// 注意：生产环境建议使用版本化迁移脚本
	if err := db.AutoMigrate(&UserModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM，Repository负责两者转换
// 3. Email上的唯一索引是邮箱唯一性的最终保证（并发创建时兜底）
// 4. 物理删除，不使用gorm.DeletedAt软删除
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"uniqueIndex;size:100;not null"`
	Age       int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}
