package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"devconnect/adapters/event"
	githubAdapter "devconnect/adapters/github"
	httpAdapter "devconnect/adapters/http"
	"devconnect/adapters/persistence"
	authUC "devconnect/internal/application/usecase/auth"
	githubUC "devconnect/internal/application/usecase/github"
	postUC "devconnect/internal/application/usecase/post"
	profileUC "devconnect/internal/application/usecase/profile"
	"devconnect/internal/config"
	"devconnect/pkg/auth"
	"devconnect/pkg/logger"
	"devconnect/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevConnect API server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnect-api")
		if err != nil {
			appLogger.Fatal("cannot initialize tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	denylist := persistence.NewRedisDenylist(redisClient, cfg.Auth.TokenLifespan)
	githubClient := githubAdapter.NewClient(cfg, appLogger)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, kafkaClient, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)

	getOwnProfileUseCase := profileUC.NewGetOwnProfileUseCase(profileRepo)
	getProfileByUserUseCase := profileUC.NewGetProfileByUserUseCase(profileRepo)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo)
	upsertProfileUseCase := profileUC.NewUpsertProfileUseCase(profileRepo, kafkaClient, appLogger)
	deleteAccountUseCase := profileUC.NewDeleteAccountUseCase(postRepo, profileRepo, userRepo, denylist, kafkaClient, appLogger)
	addExperienceUseCase := profileUC.NewAddExperienceUseCase(profileRepo, kafkaClient, appLogger)
	removeExperienceUseCase := profileUC.NewRemoveExperienceUseCase(profileRepo, kafkaClient, appLogger)
	addEducationUseCase := profileUC.NewAddEducationUseCase(profileRepo, kafkaClient, appLogger)
	removeEducationUseCase := profileUC.NewRemoveEducationUseCase(profileRepo, kafkaClient, appLogger)

	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo, kafkaClient, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, kafkaClient, appLogger)
	likePostUseCase := postUC.NewLikePostUseCase(postRepo)
	unlikePostUseCase := postUC.NewUnlikePostUseCase(postRepo)
	addCommentUseCase := postUC.NewAddCommentUseCase(postRepo, userRepo)
	removeCommentUseCase := postUC.NewRemoveCommentUseCase(postRepo)
	rssFeedUseCase := postUC.NewRSSFeedUseCase(postRepo, "http://localhost:"+cfg.App.Port, appLogger)

	listReposUseCase := githubUC.NewListReposUseCase(githubClient)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, currentUserUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(
		getOwnProfileUseCase,
		getProfileByUserUseCase,
		listProfilesUseCase,
		upsertProfileUseCase,
		deleteAccountUseCase,
		addExperienceUseCase,
		removeExperienceUseCase,
		addEducationUseCase,
		removeEducationUseCase,
		appLogger,
	)
	postHandler := httpAdapter.NewPostHandler(
		createPostUseCase,
		listPostsUseCase,
		getPostUseCase,
		deletePostUseCase,
		likePostUseCase,
		unlikePostUseCase,
		addCommentUseCase,
		removeCommentUseCase,
		rssFeedUseCase,
		appLogger,
	)
	githubHandler := httpAdapter.NewGithubHandler(listReposUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, denylist, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/users", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", authMiddleware, authHandler.CurrentUser)

		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.ListProfiles)
			profile.GET("/me", authMiddleware, profileHandler.GetOwnProfile)
			profile.POST("", authMiddleware, profileHandler.UpsertProfile)
			profile.DELETE("", authMiddleware, profileHandler.DeleteAccount)
			profile.GET("/user/:user_id", profileHandler.GetProfileByUser)
			profile.PUT("/experience", authMiddleware, profileHandler.AddExperience)
			profile.DELETE("/experience/:exp_id", authMiddleware, profileHandler.RemoveExperience)
			profile.PUT("/education", authMiddleware, profileHandler.AddEducation)
			profile.DELETE("/education/:edu_id", authMiddleware, profileHandler.RemoveEducation)
			profile.GET("/github/:username", githubHandler.ListRepos)
		}

		posts := api.Group("/posts")
		{
			posts.GET("/feed.rss", postHandler.RSSFeed)
			posts.POST("", authMiddleware, postHandler.CreatePost)
			posts.GET("", authMiddleware, postHandler.ListPosts)
			posts.GET("/:id", authMiddleware, postHandler.GetPost)
			posts.DELETE("/:id", authMiddleware, postHandler.DeletePost)
			posts.PUT("/like/:id", authMiddleware, postHandler.LikePost)
			posts.PUT("/unlike/:id", authMiddleware, postHandler.UnlikePost)
			posts.POST("/comment/:id", authMiddleware, postHandler.AddComment)
			posts.DELETE("/comment/:id/:comment_id", authMiddleware, postHandler.RemoveComment)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
