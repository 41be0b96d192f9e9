package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit_tracker_backend/internal/config"
	"habit_tracker_backend/internal/controller"
	"habit_tracker_backend/internal/repository"
	"habit_tracker_backend/internal/service"
	"habit_tracker_backend/internal/util"
	"habit_tracker_backend/pkg/configwatcher"
	"habit_tracker_backend/pkg/database"
	"habit_tracker_backend/pkg/logger"
	"habit_tracker_backend/pkg/monitoring"
	"habit_tracker_backend/pkg/security"
	"habit_tracker_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Runtime
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	habit *repository.HabitRepository
	entry *repository.HabitEntryRepository
}

type services struct {
	habit *service.HabitService
}

type controllers struct {
	habit  *controller.HabitController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		habit: repository.NewHabitRepository(db),
		entry: repository.NewHabitEntryRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rt *config.Runtime, rdb *redis.Client) *services {
	return &services{
		habit: service.NewHabitService(repos.habit, repos.entry, rt, rdb),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		habit:  controller.NewHabitController(s.habit),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, rt *config.Runtime) {
	// CORS 和限流参数从配置快照读取，热更新后立即生效
	router.Use(security.CORS(func() []string {
		return rt.Load().CORS.AllowedOrigins
	}))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(func() (int, time.Duration) {
		rl := rt.Load().RateLimit
		return rl.MaxRequests, time.Duration(rl.WindowMinutes) * time.Minute
	}))

	// 分布式追踪中间件
	if rt.Load().Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Cache)
	if err != nil {
		// 缓存只是备忘录，连不上时直接回源
		logger.Log.Warn("Failed to initialize redis, list cache disabled", zap.Error(err))
		rdb = nil
	}

	rt := config.NewRuntime(cfg)
	app := &App{
		Config: rt,
		DB:     db,
		Redis:  rdb,
	}

	util.RegisterValidationTagNames()

	repos := app.initRepositories(db)
	services := app.initServices(repos, rt, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, rt)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("habit-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	// 整份快照原子替换；缓存、限流、CORS 读快照的路径立即生效，
	// 端口、数据库路径等启动期配置重启后生效
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.Config.Swap(newCfg)
		logger.Log.Info("Config reloaded")
	})

	return app
}

func (a *App) applyConfig(newCfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(newCfg)
	}
}

func (a *App) Run() {
	port := a.Config.Load().Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go configwatcher.WatchConfig("configs/config.yaml", a.applyConfig)

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
