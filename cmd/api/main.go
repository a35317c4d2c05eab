package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	gormtracing "gorm.io/plugin/opentelemetry/tracing"

	_ "github.com/xiebiao/usercenter/docs"
	appuser "github.com/xiebiao/usercenter/internal/application/user"
	"github.com/xiebiao/usercenter/internal/domain/user"
	"github.com/xiebiao/usercenter/internal/infrastructure/config"
	"github.com/xiebiao/usercenter/internal/infrastructure/persistence/postgres"
	"github.com/xiebiao/usercenter/internal/interface/http/handler"
	"github.com/xiebiao/usercenter/internal/interface/http/middleware"
	"github.com/xiebiao/usercenter/pkg/logger"
	"github.com/xiebiao/usercenter/pkg/metrics"
	"github.com/xiebiao/usercenter/pkg/response"
	"github.com/xiebiao/usercenter/pkg/tracing"
)

// @title 用户中心 API
// @version 1.0
// @description 基于DDD分层架构的用户管理CRUD服务
// @host localhost:3000
// @BasePath /
func main() {
	// 加载配置（文件可缺省，环境变量USERCENTER_*可覆盖）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// 初始化Prometheus指标
	metrics.InitMetrics()

	// 初始化数据库连接池并自动迁移
	// 设计说明：启动时连不上数据库直接退出；启动后单个请求的
	// 数据库故障只影响该请求本身，由各层错误返回兜底
	db, err := postgres.NewDB(cfg)
	if err != nil {
		lg.Fatal("初始化数据库失败", zap.Error(err))
	}

	// 链路追踪（可选口径：未开启时完全不引入otel开销）
	var tp *sdktrace.TracerProvider
	if cfg.OTel.Enable {
		tp, err = tracing.Init(context.Background(), tracing.Config{
			Endpoint:       cfg.OTel.Endpoint,
			Insecure:       cfg.OTel.Insecure,
			SamplerRatio:   cfg.OTel.SamplerRatio,
			ServiceName:    "usercenter",
			ServiceVersion: "1.0.0",
		})
		if err != nil {
			lg.Error("初始化链路追踪失败", zap.Error(err))
		} else if err := db.Use(gormtracing.NewPlugin()); err != nil {
			lg.Error("安装GORM追踪插件失败", zap.Error(err))
		}
	}

	// 手动依赖注入（与wire.go中的声明保持一致）
	userRepo := postgres.NewUserRepository(db)
	userService := user.NewService(userRepo)
	userHandler := handler.NewUserHandler(
		appuser.NewListUsersUseCase(userService),
		appuser.NewGetUserUseCase(userService),
		appuser.NewCreateUserUseCase(userService),
		appuser.NewUpdateUserUseCase(userService),
		appuser.NewDeleteUserUseCase(userService),
		lg,
	)

	r := newEngine(cfg, userHandler, lg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("HTTP服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("HTTP服务异常退出", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info("收到退出信号，开始优雅关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("HTTP服务关闭失败", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if tp != nil {
		_ = tp.Shutdown(shutdownCtx)
	}
	lg.Info("服务已退出")
}

// newEngine 组装gin引擎：中间件链 + 路由表
func newEngine(cfg *config.Config, userHandler *handler.UserHandler, lg *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(
		// panic兜底：记录堆栈后返回通用500，不向客户端泄露内部细节
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			lg.Error("panic已恢复", zap.Any("error", recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Error: "Internal Server Error"})
		}),
		middleware.AccessLog(lg),
		middleware.Metrics(),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		}),
	)

	registerRoutes(r, userHandler)
	return r
}

// registerRoutes 注册全部路由
func registerRoutes(r *gin.Engine, userHandler *handler.UserHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	// 未匹配路由统一返回404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorBody{Error: "Route not found"})
	})
}
