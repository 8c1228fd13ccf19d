package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/config"
	"cogscreen_backend/internal/controller"
	"cogscreen_backend/internal/repository"
	"cogscreen_backend/internal/service"
	"cogscreen_backend/pkg/database"
	"cogscreen_backend/pkg/logger"
	"cogscreen_backend/pkg/monitoring"
	"cogscreen_backend/pkg/security"
	"cogscreen_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	patient    *repository.PatientRepository
	catalog    *repository.CatalogRepository
	assessment *repository.AssessmentRepository
}

type services struct {
	auth       *service.AuthService
	patient    *service.PatientService
	catalog    *service.CatalogService
	assessment *service.AssessmentService
	review     *service.ReviewService
	score      *service.ScoreService
}

type controllers struct {
	auth       *controller.AuthController
	patient    *controller.PatientController
	catalog    *controller.CatalogController
	assessment *controller.AssessmentController
	review     *controller.ReviewController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		patient:    repository.NewPatientRepository(db),
		catalog:    repository.NewCatalogRepository(db),
		assessment: repository.NewAssessmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, cat *catalog.Catalog, rdb *redis.Client) *services {
	s := &services{}

	notifier := service.NewRedisNotifier(rdb, cfg.Events.Channel)

	s.auth = service.NewAuthService(repos.user, cfg)
	s.patient = service.NewPatientService(repos.patient)
	s.catalog = service.NewCatalogService(cat)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.patient, cat, notifier)
	s.review = service.NewReviewService(repos.assessment, notifier)
	s.score = service.NewScoreService(repos.assessment, cat)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		patient:    controller.NewPatientController(s.patient),
		catalog:    controller.NewCatalogController(s.catalog),
		assessment: controller.NewAssessmentController(s.assessment, s.score),
		review:     controller.NewReviewController(s.review),
		health:     controller.NewHealthController(db),
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

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	cat, err := catalog.Load()
	if err != nil {
		logger.Log.Fatal("Failed to load question catalog", zap.Error(err))
	}

	// Debug deployments migrate on every start; release deployments only
	// when the -migrate flag asked for it.
	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
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
	services := app.initServices(repos, cfg, cat, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cogscreen-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
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
