package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	movieHTTP "movielist/internal/controller/http"
	"movielist/internal/repo/persistent"
	"movielist/internal/usecase"
	"movielist/pkg/cache"
	"movielist/pkg/config"
	"movielist/pkg/database"
	"movielist/pkg/logger"
	"movielist/pkg/middleware"
	"movielist/pkg/s3"
	"movielist/pkg/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "movielist/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	sessions    session.Store
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(gin.ReleaseMode)
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis, sessions will be in-memory: %v", err)
		redisClient = nil
	}

	var sessions session.Store
	if redisClient != nil {
		sessions = session.NewRedisStore(redisClient)
	} else {
		sessions = session.NewMemoryStore()
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client, poster uploads disabled: %v", err)
		s3Client = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		sessions:    sessions,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	adminRepo := persistent.NewAdminUserRepository(a.db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, a.log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.sessions, a.log)

	// Initialize HTTP handlers
	postHandler := movieHTTP.NewPostHandler(postUseCase, a.log)
	commentHandler := movieHTTP.NewCommentHandler(commentUseCase, a.log)
	adminHandler := movieHTTP.NewAdminHandler(
		postUseCase,
		commentUseCase,
		authUseCase,
		a.sessions,
		a.cfg.SessionCookieName,
		a.log,
	)
	uploadHandler := movieHTTP.NewUploadHandler(a.s3Client, a.log)

	// Setup router
	r := gin.Default()
	r.SetHTMLTemplate(movieHTTP.LoadTemplates())

	// CORS middleware
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if a.cfg.AllowedOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{a.cfg.AllowedOrigin}
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// Wrong method on a known route answers 405 with a JSON body
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/post", postHandler.GetPost)
		api.GET("/comments", commentHandler.ListComments)
		api.POST("/comments",
			middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute),
			commentHandler.SubmitComment,
		)
		api.POST("/view", postHandler.BumpView)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.SessionMiddleware(a.sessions, a.cfg.SessionCookieName))
	{
		admin.GET("", adminHandler.Dispatch)
		admin.POST("",
			middleware.RateLimitMiddleware(a.redisClient, 30, time.Minute),
			adminHandler.Dispatch,
		)
		admin.POST("/upload", middleware.AdminRequired(), uploadHandler.UploadPoster)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Movie list service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down movie list service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Movie list service exited")
	return nil
}
