//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appuser "github.com/xiebiao/usercenter/internal/application/user"
	"github.com/xiebiao/usercenter/internal/domain/user"
	"github.com/xiebiao/usercenter/internal/infrastructure/config"
	"github.com/xiebiao/usercenter/internal/infrastructure/persistence/postgres"
	"github.com/xiebiao/usercenter/internal/interface/http/handler"
	"github.com/xiebiao/usercenter/pkg/logger"
)

// Wire依赖注入声明。与main.go中的手动组装保持同构，
// 运行 `wire ./cmd/api` 可生成wire_gen.go替代手动装配。

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

func provideEngine(cfg *config.Config, userHandler *handler.UserHandler, lg *zap.Logger) *gin.Engine {
	return newEngine(cfg, userHandler, lg)
}

// InitializeApp 组装完整的HTTP应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		config.Load,
		provideLogger,
		postgres.NewDB,
		postgres.NewUserRepository,
		user.NewService,
		appuser.NewListUsersUseCase,
		appuser.NewGetUserUseCase,
		appuser.NewCreateUserUseCase,
		appuser.NewUpdateUserUseCase,
		appuser.NewDeleteUserUseCase,
		handler.NewUserHandler,
		provideEngine,
	)
	return nil, nil
}
