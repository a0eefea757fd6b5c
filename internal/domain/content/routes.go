package content

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/content", h.Create)
	r.GET("/contents/:episode_uuid", h.ListByEpisode)
	r.PUT("/contents/:content_uuid", h.Update)
	r.DELETE("/contents/:content_uuid", h.Delete)
}
