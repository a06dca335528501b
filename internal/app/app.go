package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/controller"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/configwatcher"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
	"learnpath_backend/pkg/security"
	"learnpath_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user     *repository.UserRepository
	resource *repository.ResourceRepository
	path     *repository.LearningPathRepository
}

type services struct {
	session  *service.SessionService
	auth     *service.AuthService
	user     *service.UserService
	resource *service.ResourceService
	path     *service.PathService
	progress *service.ProgressService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	resource *controller.ResourceController
	path     *controller.PathController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		resource: repository.NewResourceRepository(db),
		path:     repository.NewLearningPathRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.session = service.NewSessionService(rdb)
	s.auth = service.NewAuthService(repos.user, s.session, cfg)
	s.user = service.NewUserService(repos.user)
	s.resource = service.NewResourceService(repos.resource)
	s.path = service.NewPathService(repos.path, repos.resource, repos.user)
	s.progress = service.NewProgressService(repos.path)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		resource: controller.NewResourceController(s.resource),
		path:     controller.NewPathController(s.path, s.progress),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(ginMode(cfg.Server.Mode))

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnpath-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	// 配置热更新：只刷新可安全热替换的字段
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Config.CORS = newCfg.CORS
		app.Config.RateLimit = newCfg.RateLimit
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
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

	if err := a.Redis.Close(); err != nil {
		logger.Log.Error("Failed to close redis client", zap.Error(err))
	}

	log.Println("Server exiting")
}
