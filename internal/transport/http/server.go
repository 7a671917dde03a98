package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "moodtunes/internal/app"
	"moodtunes/internal/bootstrap"
	"moodtunes/internal/cache"
	rabbitmqClient "moodtunes/internal/platform/rabbitmq"
	"moodtunes/internal/repository"
	"moodtunes/internal/transport/http/handler"
	"moodtunes/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// Liveness probe: fixed body, independent of every collaborator.
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "moodtunes backend is running"})
	})

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	detectionPublisher := rabbitmqClient.NewDetectionPublisher(app.MQConn, app.Config.RabbitMQ.DetectionQueue)
	recommendationCache := cache.NewRecommendationCache(app.Redis,
		time.Duration(app.Config.Redis.RecommendTTLSeconds)*time.Second)
	detectionRepo := repository.NewDetectionRepository(app.MySQL)

	var detectService *appsvc.DetectService
	if app.Classifier != nil {
		detectService = appsvc.NewDetectService(app.Classifier, detectionPublisher)
	} else {
		detectService = appsvc.NewDetectService(nil, nil)
	}
	recommendService := appsvc.NewRecommendService(app.Catalog, recommendationCache)
	accountService := appsvc.NewAccountService(
		app.Identity,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)

	detectHandler := handler.NewDetectHandler(detectService)
	recommendHandler := handler.NewRecommendHandler(recommendService)
	accountHandler := handler.NewAccountHandler(accountService)
	historyHandler := handler.NewHistoryHandler(detectionRepo)

	router.POST("/detect", middleware.OptionalAuthJWT(app.Config.Auth.JWTSecret), detectHandler.Detect)
	router.POST("/recommend", recommendHandler.Recommend)
	router.POST("/signup", accountHandler.SignUp)
	router.POST("/forgot-password", accountHandler.ForgotPassword)

	v1 := router.Group("/api/v1")
	v1.GET("/history", middleware.AuthJWT(app.Config.Auth.JWTSecret), historyHandler.List)

	return router
}
