// Package app 提供应用程序的初始化和装配功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appcache "github.com/yeisme/docvault/pkg/cache"
	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/internal/handle"
	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/jobs"
	"github.com/yeisme/docvault/pkg/internal/router"
	"github.com/yeisme/docvault/pkg/internal/storage"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/metrics"
	"github.com/yeisme/docvault/pkg/middleware"
	"github.com/yeisme/docvault/pkg/scheduler"
	"github.com/yeisme/docvault/pkg/tracing"
)

// shutdownTimeout 关停时释放追踪导出器的宽限时间.
const shutdownTimeout = 5 * time.Second

type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 装配整个应用：配置、观测、存储、目录快照、调度器与路由.
// 任何关键资源（弱 JWT 密钥、不可用的目录根）失败都直接退出进程.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 账号/部门表结构迁移
	if err := manager.GetDBClient().Migrate(); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	// 令牌服务：HS512 密钥不足 64 字节时启动失败
	tokens, err := auth.NewTokenService(config.Auth)
	if err != nil {
		fmt.Printf("Error initializing token service: %v\n", err)
		os.Exit(1)
	}

	// 目录来源在构造时确定一次：配了 remote_url 走远端列表，否则扫本地目录
	var (
		source index.Source
		local  *index.LocalSource
	)

	if config.Index.RemoteEnabled() {
		source = index.NewRemoteSource(config.Index, config.CircuitBreaker)
	} else {
		local, err = index.NewLocalSource(config.Index.BasePath)
		if err != nil {
			fmt.Printf("Error preparing OCR directories: %v\n", err)
			os.Exit(1)
		}

		source = local
	}

	idx := index.New(source)
	resolver := index.NewResolver(idx, local)

	l := log.Logger()

	// 首次刷新失败不致命：远端可能暂不可用，空快照照常服务
	if err := idx.Refresh(ctx); err != nil {
		l.Warn().Err(err).Msg("Initial catalog refresh failed, serving empty snapshot")
	}

	handle.Init(tokens, idx, resolver, local)

	// 调度器与目录定时重扫
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager, idx, resolver, local); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	sched.Start()

	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.CORSMiddleware(config.Server),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.GinLoggerMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
	)

	if config.RateLimit.Enabled {
		engine.Use(middleware.RateLimitMiddleware(config.RateLimit))
	}

	if config.CircuitBreaker.Enabled {
		engine.Use(middleware.CircuitBreakerMiddleware(config.CircuitBreaker))
	}

	engine.Use(
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
		middleware.AuthMiddleware(tokens, config.Auth),
	)

	// GET 响应缓存，挂在过滤器与列表端点上
	var cached gin.HandlerFunc

	if kvClient := manager.GetKVClient(); kvClient != nil {
		cacheCfg := middleware.DefaultCacheConfig(appcache.NewCache(kvClient.KVStore))
		// 不同用户看到的列表一致，但令牌参与键可避免串缓存的争议场景
		cacheCfg.VaryHeaders = []string{"Authorization"}
		cached = middleware.CacheMiddleware(cacheCfg)
	}

	api := engine.Group("/api/v1")
	router.RegisterAll(api, router.Options{ResponseCache: cached})
	router.RegisterSwaggerRoute(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动 HTTP 服务，阻塞直至出错.
func (a *App) Run() error {
	defer a.Shutdown()

	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown 释放调度器、存储与追踪资源.
func (a *App) Shutdown() {
	if a.sched != nil {
		_ = a.sched.Stop()
	}

	if a.manager != nil {
		_ = a.manager.Close()
	}

	ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownTimeout)
	defer cancel()

	_ = tracing.ShutdownTracer(ctx)
}
