package episode

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/episode", h.Create)
	r.POST("/episodes/:album_id", h.ListByAlbum)
	r.PUT("/episode/:episode_uuid", h.Update)
	r.DELETE("/episode/:episode_uuid", h.Delete)
}
