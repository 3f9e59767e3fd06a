package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xyz-asif/memtodo/docs"
	"github.com/xyz-asif/memtodo/internal/config"
	"github.com/xyz-asif/memtodo/internal/features/todos"
	"github.com/xyz-asif/memtodo/internal/middleware"
	"github.com/xyz-asif/memtodo/internal/pkg/response"
)

// NewRouter builds the engine with global middleware and every route.
// The repository is owned by the caller and lives as long as the process.
func NewRouter(cfg *config.Config, repo *todos.Repository) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics(repo.Count)
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	SetupRoutes(router, repo, cfg)
	return router
}

func SetupRoutes(router *gin.Engine, repo *todos.Repository, cfg *config.Config) {
	router.GET("/health", Health)

	if cfg.SwaggerEnabled {
		router.GET(
			"/swagger/*any",
			ginSwagger.WrapHandler(
				swaggerFiles.Handler,
				ginSwagger.URL("/swagger/doc.json"),
				ginSwagger.DeepLinking(true),
				ginSwagger.DefaultModelsExpandDepth(-1),
				ginSwagger.DocExpansion("none"),
			),
		)
	}

	todos.RegisterRoutes(router, repo)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.StatusResponse
// @Router /health [get]
func Health(c *gin.Context) {
	response.Success(c, response.StatusResponse{Status: "ok"})
}
