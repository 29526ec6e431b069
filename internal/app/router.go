package app

import (
	"net/http"
	"time"

	contentHTTP "chaseplus/internal/controller/http"
	"chaseplus/pkg/jwt"
	"chaseplus/pkg/logger"
	"chaseplus/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "chaseplus/docs" // Swagger docs
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Course   *contentHTTP.CourseHandler
	Blog     *contentHTTP.BlogHandler
	Category *contentHTTP.CategoryHandler
	Auth     *contentHTTP.AuthHandler
	Site     *contentHTTP.SiteHandler
}

type RouterConfig struct {
	ServiceName       string
	CORSOrigins       []string
	SessionCookieName string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter builds the gin engine. A nil redisClient disables rate limiting.
func NewRouter(cfg RouterConfig, h Handlers, jwtService *jwt.Service, redisClient *redis.Client, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	{
		api.GET("/site/home", h.Site.Home)
		api.GET("/site/navigation", h.Site.Navigation)

		api.GET("/courses", h.Course.ListCourses)
		api.GET("/courses/:id", h.Course.GetCourse)
		api.GET("/categories", h.Category.ListCategories)
		api.GET("/categories/:name/courses", h.Course.ListCategoryCourses)

		api.GET("/blogs", h.Blog.ListBlogs)
		api.GET("/blogs/recent", h.Blog.RecentBlogs)
		api.GET("/blogs/:id", h.Blog.GetBlog)

		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService, cfg.SessionCookieName), h.Auth.RequireActiveAdmin)
	{
		admin.GET("/me", h.Auth.Me)
		admin.PUT("/password", h.Auth.ChangePassword)

		admin.GET("/courses", h.Course.AdminListCourses)
		admin.POST("/courses", h.Course.CreateCourse)
		admin.GET("/courses/:id", h.Course.AdminGetCourse)
		admin.PUT("/courses/:id", h.Course.UpdateCourse)
		admin.PATCH("/courses/:id/toggle", h.Course.ToggleCourse)
		admin.DELETE("/courses/:id", h.Course.DeleteCourse)

		admin.GET("/blogs", h.Blog.AdminListBlogs)
		admin.POST("/blogs", h.Blog.CreateBlog)
		admin.GET("/blogs/:id", h.Blog.AdminGetBlog)
		admin.PUT("/blogs/:id", h.Blog.UpdateBlog)
		admin.PATCH("/blogs/:id/toggle", h.Blog.ToggleBlog)
		admin.DELETE("/blogs/:id", h.Blog.DeleteBlog)

		admin.GET("/categories", h.Category.AdminListCategories)
		admin.POST("/categories", h.Category.CreateCategory)
		admin.GET("/categories/:id", h.Category.GetCategory)
		admin.PUT("/categories/:id", h.Category.UpdateCategory)
		admin.PATCH("/categories/:id/toggle", h.Category.ToggleCategory)
		admin.DELETE("/categories/:id", h.Category.DeleteCategory)
	}

	return r
}
