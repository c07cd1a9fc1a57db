package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/community-help/portal-api/chat"
	"github.com/community-help/portal-api/external/mailer"
	"github.com/community-help/portal-api/logmodule"
	"github.com/community-help/portal-api/schema"
	"github.com/community-help/portal-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CommunityCore

	// Realtime chat hub
	hub *chat.Hub

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	mailer *mailer.Mailer

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	jwtKey *rsa.PrivateKey,
	mail *mailer.Mailer,
	backgroundEnqueuer *machinery.Server) *Server {
	communityStore := store.NewCommunityStore(ormDB)

	return &Server{
		store:              communityStore,
		hub:                chat.NewHub(communityStore),
		jwtPrivateKey:      jwtKey,
		mailer:             mail,
		backgroundEnqueuer: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	resetRoute := apiRoute.Group("/password-reset")
	{
		resetRoute.POST("/send-otp", s.sendOTP)
		resetRoute.POST("/verify-otp", s.verifyOTP)
		resetRoute.POST("/reset", s.resetPassword)
	}

	// routes below require a valid token and an unblocked account
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	helpRoute := apiRoute.Group("/help-requests")
	{
		helpRoute.POST("", s.requireRole(schema.ROLE_RESIDENT), s.createHelp)
		helpRoute.GET("", s.listHelps)
		helpRoute.GET("/available", s.requireRole(schema.ROLE_HELPER), s.availableHelps)
		helpRoute.GET("/my-requests", s.myHelps)
		helpRoute.PUT("/:id/accept", s.requireRole(schema.ROLE_HELPER), s.acceptHelp)
		helpRoute.PUT("/:id/start", s.requireRole(schema.ROLE_HELPER), s.startHelp)
		helpRoute.PUT("/:id/complete", s.requireRole(schema.ROLE_HELPER), s.completeHelp)
		helpRoute.PUT("/:id/status", s.updateHelpStatus)
	}

	chatRoute := apiRoute.Group("/chat")
	{
		chatRoute.GET("/ws", s.chatWebsocket)
		chatRoute.GET("/:requestId/info", s.chatInfo)
		chatRoute.GET("/:requestId/messages", s.chatMessages)
	}

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.submitReport)
		reportRoute.GET("/my", s.myReports)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.requireRole(schema.ROLE_ADMIN))
	{
		adminRoute.GET("/users", s.listUsers)
		adminRoute.PUT("/users/:id/block", s.blockUser)
		adminRoute.PUT("/users/:id/unblock", s.unblockUser)

		adminRoute.GET("/requests/pending", s.pendingHelps)
		adminRoute.PUT("/requests/:id/approve", s.approveHelp)
		adminRoute.PUT("/requests/:id/reject", s.rejectHelp)

		adminRoute.GET("/reports", s.allReports)
		adminRoute.PUT("/reports/:id/status", s.updateReportStatus)

		adminRoute.GET("/stats/users", s.userStats)
		adminRoute.GET("/stats/requests", s.requestStats)
		adminRoute.GET("/stats/reports", s.reportStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
