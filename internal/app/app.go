package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dsa_roadmap_backend/internal/config"
	"dsa_roadmap_backend/internal/controller"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/service"
	"dsa_roadmap_backend/pkg/database"
	"dsa_roadmap_backend/pkg/logger"
	"dsa_roadmap_backend/pkg/monitoring"
	"dsa_roadmap_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	kv        repository.KeyValueStore
	resource  *repository.ResourceRepository
	blog      *repository.BlogRepository
	book      *repository.BookRepository
	project   *repository.ProjectRepository
	algorithm *repository.AlgorithmRepository
}

type services struct {
	profile    *service.ProfileService
	roadmap    *service.RoadmapService
	assessment *service.AssessmentService
	catalog    *service.CatalogService
}

type controllers struct {
	profile    *controller.ProfileController
	assessment *controller.AssessmentController
	roadmap    *controller.RoadmapController
	catalog    *controller.CatalogController
	page       *controller.PageController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig pushes a reloaded config to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	logger.SetMode(cfg.Server.Mode)
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	cacheTTL := time.Duration(cfg.Redis.CacheTTL) * time.Second
	return &repositories{
		kv:        repository.NewKVRepository(db, rdb, cacheTTL),
		resource:  repository.NewResourceRepository(db),
		blog:      repository.NewBlogRepository(db),
		book:      repository.NewBookRepository(db),
		project:   repository.NewProjectRepository(db),
		algorithm: repository.NewAlgorithmRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}
	s.profile = service.NewProfileService(repos.kv)
	s.roadmap = service.NewRoadmapService(repos.kv)
	s.assessment = service.NewAssessmentService(repos.kv, s.roadmap)
	s.catalog = service.NewCatalogService(repos.kv, repos.resource, repos.blog, repos.book, repos.project, repos.algorithm)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		profile:    controller.NewProfileController(s.profile),
		assessment: controller.NewAssessmentController(s.assessment),
		roadmap:    controller.NewRoadmapController(s.roadmap, s.profile),
		catalog:    controller.NewCatalogController(s.catalog, s.profile),
		page:       controller.NewPageController(s.profile, s.assessment, s.roadmap, s.catalog),
		health:     controller.NewHealthController(db),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("dsa-roadmap", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
