package main

import (
	"context"
	"log"
	"os"

	"notebin/config"
	"notebin/handler"
	"notebin/middleware"
	"notebin/repository"
	"notebin/services"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	services.InitJWT()
}

type application struct {
	notesService    *usecase.NotesService
	binService      *usecase.BinService
	mediaService    *usecase.MediaService
	tagsService     *usecase.TagsService
	userService     *usecase.UserService
	recoveryService *usecase.RecoveryService

	notesRepo   *repository.NotesRepo
	usersRepo   *repository.UsersRepo
	sessionRepo *repository.SessionRepo

	storage services.Storage
	storCfg config.StorageConfig
}

func buildApplication() (*application, config.RetentionConfig) {
	dbCfg := config.LoadDatabaseConfig()
	retCfg := config.LoadRetentionConfig()
	storCfg := config.LoadStorageConfig()

	utils.InitMongoClient(dbCfg.URI, dbCfg.MaxPoolSize, dbCfg.MinPoolSize, dbCfg.MaxConnIdleTime)

	db := utils.MongoClient.Database(dbCfg.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Printf("Session cache disabled: %v", err)
		} else {
			services.GlobalSessionCache = cache
		}
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}
	}

	storage, err := services.NewStorage(storCfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	notesRepo := repository.GetNotesRepo(utils.MongoClient, dbCfg.DatabaseName)
	tagsRepo := repository.GetTagsRepo(utils.MongoClient, dbCfg.DatabaseName)
	usersRepo := repository.GetUsersRepo(utils.MongoClient, dbCfg.DatabaseName)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient, dbCfg.DatabaseName)

	app := &application{
		notesService: &usecase.NotesService{NotesRepo: notesRepo},
		binService:   &usecase.BinService{NotesRepo: notesRepo},
		mediaService: &usecase.MediaService{NotesRepo: notesRepo, Storage: storage},
		tagsService:  &usecase.TagsService{TagsRepo: tagsRepo, NotesRepo: notesRepo},
		userService:  &usecase.UserService{UsersRepo: usersRepo},
		recoveryService: &usecase.RecoveryService{
			UsersRepo:   usersRepo,
			Limiter:     services.NewSlidingWindowLimiter(retCfg.ResetLimit, retCfg.ResetWindow),
			TokenMaxAge: retCfg.ResetTokenMaxAge,
		},
		notesRepo:   notesRepo,
		usersRepo:   usersRepo,
		sessionRepo: sessionRepo,
		storage:     storage,
		storCfg:     storCfg,
	}
	return app, retCfg
}

func setupRouter(app *application) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(10 * 1024 * 1024))
	router.Use(middleware.SessionMiddleware(app.sessionRepo))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if app.storCfg.Backend == "local" {
		static := router.Group("/static")
		static.Use(middleware.CacheControlMiddleware("86400"))
		static.Static("/uploads", app.storCfg.UploadDir)
	}

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, app.userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, app.userService, app.sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
			auth.POST("/forgot-password", func(c *gin.Context) {
				handler.ForgotPasswordHandler(c, app.recoveryService)
			})
			auth.POST("/reset-password", func(c *gin.Context) {
				handler.ResetPasswordHandler(c, app.recoveryService)
			})
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, app.userService)
			})
			user.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, app.userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, app.sessionRepo)
			})

			twoFactor := user.Group("/2fa")
			{
				twoFactor.POST("/setup", func(c *gin.Context) {
					handler.Setup2FAHandler(c, app.userService)
				})
				twoFactor.POST("/enable", func(c *gin.Context) {
					handler.Enable2FAHandler(c, app.usersRepo)
				})
				twoFactor.POST("/disable", func(c *gin.Context) {
					handler.Disable2FAHandler(c, app.userService, app.usersRepo)
				})
			}
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, app.sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, app.sessionRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetNotesHandler(c, app.notesService, app.tagsService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, app.notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, app.notesService)
			})
			notes.POST("/:id/pin", func(c *gin.Context) {
				handler.TogglePinHandler(c, app.notesService)
			})

			notes.DELETE("/:id", func(c *gin.Context) {
				handler.SoftDeleteNoteHandler(c, app.binService)
			})
			notes.POST("/:id/restore", func(c *gin.Context) {
				handler.RestoreNoteHandler(c, app.binService)
			})
			notes.DELETE("/:id/permanent", func(c *gin.Context) {
				handler.PermanentDeleteNoteHandler(c, app.binService)
			})

			notes.POST("/:id/media", func(c *gin.Context) {
				handler.AddMediaHandler(c, app.mediaService, app.storCfg.MaxUploadSize)
			})
			notes.DELETE("/:id/media/:mediaId", func(c *gin.Context) {
				handler.RemoveMediaHandler(c, app.mediaService)
			})

			notes.POST("/:id/tags", func(c *gin.Context) {
				handler.AttachTagHandler(c, app.tagsService)
			})
			notes.DELETE("/:id/tags/:tagId", func(c *gin.Context) {
				handler.DetachTagHandler(c, app.tagsService)
			})
		}

		bin := protected.Group("/bin")
		{
			bin.GET("", func(c *gin.Context) {
				handler.GetBinHandler(c, app.notesService, app.tagsService)
			})
			bin.POST("/restore-all", func(c *gin.Context) {
				handler.RestoreAllHandler(c, app.binService)
			})
			bin.DELETE("", func(c *gin.Context) {
				handler.EraseAllHandler(c, app.binService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", func(c *gin.Context) {
				handler.GetTagsHandler(c, app.tagsService)
			})
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, app.tagsService)
			})
			tags.POST("/batch-apply", func(c *gin.Context) {
				handler.BatchApplyTagHandler(c, app.tagsService)
			})
		}

		protected.POST("/upload", func(c *gin.Context) {
			handler.UploadHandler(c, app.storage, app.storCfg.MaxUploadSize)
		})
		protected.GET("/stats", func(c *gin.Context) {
			handler.StatsHandler(c, app.notesRepo, app.notesService)
		})
	}

	return router
}

func main() {
	app, retCfg := buildApplication()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	purger := services.NewPurgeScheduler(app.notesRepo, retCfg.Retention, retCfg.PurgeWindow, retCfg.PurgeInterval)
	purger.Start(ctx)

	router := setupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	runServer(router, ":"+port, cancel)
}
