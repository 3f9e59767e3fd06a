// ================== internal/features/todos/routes.go ==================
package todos

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, repo *Repository) {
	handler := NewHandler(repo)

	todos := router.Group("/todos")
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.GET("/:id", ValidateUUID(), handler.Get)
		todos.PUT("/:id", ValidateUUID(), handler.Update)
		todos.DELETE("/:id", ValidateUUID(), handler.Delete)
	}
}
