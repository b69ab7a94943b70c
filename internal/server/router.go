package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/config"
	"github.com/snnyvrz/bookshelf-api/internal/docs"
	"github.com/snnyvrz/bookshelf-api/internal/handler"
	"github.com/snnyvrz/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Books       repository.BookRepository
	RateLimiter *middleware.RateLimiter
	StartTime   time.Time
	Version     string
}

// NewRouter wires middleware, the book routes, health probes and the
// Swagger UI onto a fresh gin engine.
func NewRouter(deps RouterDeps) *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.CORS(deps.Config.CORSAllowOrigins))
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	e.NoRoute(handler.NotFound)
	e.NoMethod(handler.MethodNotAllowed)

	healthHandler := handler.NewHealthHandler(deps.Books, deps.StartTime, deps.Version)
	healthHandler.RegisterRoutes(e)

	bookHandler := handler.NewBookHandler(deps.Books, deps.Logger)
	bookHandler.RegisterRoutes(e.Group(""))

	docs.SwaggerInfo.Host = deps.Config.Addr()
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
