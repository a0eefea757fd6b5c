package category

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/category", h.Add)
	r.GET("/categories", h.List)
	r.PUT("/category", h.Update)
	r.DELETE("/category/:category_id", h.Delete)
}
