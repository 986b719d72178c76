package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/config"
	"github.com/aminbn12/planiunv/internal/api/handler"
	"github.com/aminbn12/planiunv/internal/api/middleware"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/redis"
	"github.com/aminbn12/planiunv/pkg/response"
)

// New builds the HTTP engine with all routes and middleware attached.
func New(h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	response.RegisterTagNames()

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authed.POST("/logout", h.Auth.Logout)
		authed.GET("/me", h.Auth.Me)

		students := authed.Group("/students")
		{
			students.GET("", h.Student.List)
			students.POST("", h.Student.Create)
			students.GET("/:id", h.Student.Get)
			students.PUT("/:id", h.Student.Update)
			students.DELETE("/:id", h.Student.Delete)
		}

		professors := authed.Group("/professors")
		{
			professors.GET("", h.Professor.List)
			professors.POST("", h.Professor.Create)
			professors.GET("/:id", h.Professor.Get)
			professors.PUT("/:id", h.Professor.Update)
			professors.DELETE("/:id", h.Professor.Delete)
		}

		courses := authed.Group("/courses")
		{
			courses.GET("", h.Course.List)
			courses.POST("", h.Course.Create)
			courses.GET("/:id", h.Course.Get)
			courses.PUT("/:id", h.Course.Update)
			courses.DELETE("/:id", h.Course.Delete)
		}

		events := authed.Group("/events")
		{
			events.GET("", h.Event.List)
			events.POST("", h.Event.Create)
			events.GET("/:id", h.Event.Get)
			events.PUT("/:id", h.Event.Update)
			events.DELETE("/:id", h.Event.Delete)
		}

		certificates := authed.Group("/certificates")
		{
			certificates.GET("", h.Certificate.List)
			certificates.POST("", h.Certificate.Create)
			certificates.GET("/:id", h.Certificate.Get)
			certificates.PUT("/:id", h.Certificate.Update)
			certificates.DELETE("/:id", h.Certificate.Delete)
		}

		planning := authed.Group("/planning")
		{
			planning.GET("", h.Planning.Grid)
			planning.GET("/calendar.ics", h.Planning.Calendar)
			planning.GET("/export",
				middleware.RoleAuth(model.RoleAdmin, model.RoleProfessor),
				h.Planning.Export)
		}

		authed.GET("/stats/dashboard", h.Stats.Dashboard)
	}

	return r
}
