package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nerdtalks/backend/internal/auth"
	"github.com/nerdtalks/backend/internal/database"
	"github.com/nerdtalks/backend/internal/handlers"
	"github.com/nerdtalks/backend/internal/middleware"
	"github.com/nerdtalks/backend/internal/store"
)

type Server struct {
	db       database.Service
	stores   *store.Stores
	handler  *handlers.Handler
	verifier auth.Verifier
	log      *zap.Logger
}

// New wires the router over explicitly injected dependencies and returns
// a configured HTTP server.
func New(db database.Service, stores *store.Stores, handler *handlers.Handler, verifier auth.Verifier, port string, log *zap.Logger) *http.Server {
	s := &Server{
		db:       db,
		stores:   stores,
		handler:  handler,
		verifier: verifier,
		log:      log,
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(s.log), gin.Recovery())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Auth routes (public)
	r.POST("/register", s.handler.Auth.Register)
	r.POST("/login", s.handler.Auth.Login)
	r.POST("/users", s.handler.User.CreateUser)

	// Public reads. The single-post and comment listings live under
	// /post and /comments: the GET tree already pairs /posts with the
	// static /posts/user prefix, which cannot share a level with a
	// :postId wildcard.
	r.GET("/posts", s.handler.Post.GetPosts)
	r.GET("/post/:postId", s.handler.Post.GetPost)
	r.GET("/comments/:postId", s.handler.Comment.GetComments)
	r.GET("/users/:uid", s.handler.User.GetUser)
	r.GET("/tags", s.handler.Tag.GetTags)
	r.GET("/announcements", s.handler.Announcement.GetAnnouncements)

	// Protected routes (authentication required)
	protected := r.Group("")
	protected.Use(middleware.RequireAuth(s.verifier, s.log))
	{
		protected.GET("/me", s.handler.Auth.GetMe)

		protected.POST("/posts", s.handler.Post.CreatePost)
		protected.DELETE("/posts/:postId", s.handler.Post.DeletePost)
		protected.PATCH("/posts/:postId/vote", s.handler.Post.VotePost)
		protected.GET("/posts/user/:authorId", s.handler.Post.GetUserPosts)

		protected.POST("/comments/:postId", s.handler.Comment.CreateComment)
		protected.DELETE("/comments/:commentId", s.handler.Comment.DeleteComment)

		protected.POST("/reports/comment", s.handler.Report.FileReport)

		// Admin routes: every one of them goes through the role check.
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin(s.stores.Users, s.log))
		{
			admin.GET("/reports", s.handler.Report.ListReports)
			admin.PATCH("/reports/:id/status", s.handler.Report.SetReportStatus)
			admin.DELETE("/reports/:id/delete", s.handler.Report.DeleteReport)

			admin.PATCH("/users/:uid/role", s.handler.User.PromoteToAdmin)
			admin.POST("/tags", s.handler.Tag.CreateTag)
			admin.POST("/announcements", s.handler.Announcement.CreateAnnouncement)
		}
	}

	return r
}
