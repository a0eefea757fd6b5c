package album

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/album", h.Create)
	r.POST("/albums", h.List)
	r.POST("/album/:album_uuid", h.Update)
	r.POST("/album/:album_uuid/add-images", h.AddImages)
	r.POST("/album/:album_uuid/remove-images", h.RemoveImages)
	r.DELETE("/album/:album_uuid", h.Delete)
}
