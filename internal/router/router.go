package router

import (
	"net/http"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/config"
	"github.com/InshiyaRavat/question-bank-sub002/internal/handlers"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}
func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
}

func Setup(log *zap.Logger) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("qbank_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	userHandler := handlers.NewUserHandler(log)
	subjectHandler := handlers.NewSubjectHandler(log)
	questionHandler := handlers.NewQuestionHandler(log)
	sessionHandler := handlers.NewSessionHandler(log)
	reportHandler := handlers.NewReportHandler(log)
	exportHandler := handlers.NewExportHandler(log)
	adminHandler := handlers.NewAdminHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/csrf", func(c *gin.Context) {
		token, _ := c.Get("csrf_token")
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	router.POST("/login", limiter, authHandler.Login)
	router.POST("/register", limiter, authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	// Public reference data
	router.GET("/subjects", subjectHandler.List)
	router.GET("/subjects/:id/topics", subjectHandler.ListTopics)
	router.GET("/topics/:id/questions", questionHandler.ListByTopic)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.GET("", userHandler.Profile)
			profileRoutes.POST("/update-info", userHandler.UpdateInfo)
			profileRoutes.POST("/update-password", userHandler.UpdatePassword)
			profileRoutes.POST("/reminders", userHandler.UpdateReminders)
			profileRoutes.POST("/delete", userHandler.DeleteAccount)
		}

		// Activity producers
		authorized.POST("/sessions", sessionHandler.Create)
		authorized.POST("/solved", sessionHandler.CreateSolved)

		// Question flagging is open to any signed-in user; resolution is
		// an admin action below.
		authorized.POST("/questions/:id/flag", questionHandler.Flag)

		// Report pipeline. The handlers enforce that a non-admin can only
		// read their own report.
		authorized.GET("/users/:id/report", reportHandler.Show)
		authorized.GET("/users/:id/report/pdf", reportHandler.ShowPDF)
		authorized.GET("/users/:id/report/charts", reportHandler.ShowCharts)

		// Generic export dispatcher.
		authorized.POST("/exports", exportHandler.Create)
	}

	admin := router.Group("/admin")
	admin.Use(AuthRequired(), AdminRequired())
	{
		admin.POST("/subjects", subjectHandler.Create)
		admin.DELETE("/subjects/:id", subjectHandler.Delete)
		admin.POST("/topics", subjectHandler.CreateTopic)
		admin.PUT("/topics/:id", subjectHandler.UpdateTopic)
		admin.DELETE("/topics/:id", subjectHandler.DeleteTopic)

		admin.POST("/questions", questionHandler.Create)
		admin.PUT("/questions/:id", questionHandler.Update)
		admin.DELETE("/questions/:id", questionHandler.Trash)
		admin.GET("/questions/trash", questionHandler.ListTrash)
		admin.POST("/questions/:id/restore", questionHandler.Restore)
		admin.DELETE("/questions/:id/purge", questionHandler.Purge)
		admin.GET("/questions/flagged", questionHandler.ListFlagged)
		admin.POST("/questions/:id/resolve-flag", questionHandler.ResolveFlag)

		admin.POST("/users/:id/subscriptions", adminHandler.CreateSubscription)
		admin.GET("/users/report/pdf", adminHandler.UsersReportPDF)
		admin.GET("/settings/accuracy-threshold", adminHandler.GetAccuracyThreshold)
		admin.PUT("/settings/accuracy-threshold", adminHandler.SetAccuracyThreshold)
	}

	return router
}
