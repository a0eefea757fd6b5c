package album

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediacatalog/internal/auth"
	"mediacatalog/internal/ingest"
	"mediacatalog/internal/pkg/response"
)

type Handler struct {
	service  *Service
	engine   *ingest.Engine
	resolver *auth.Resolver
}

func NewHandler(service *Service, engine *ingest.Engine, resolver *auth.Resolver) *Handler {
	return &Handler{service: service, engine: engine, resolver: resolver}
}

// Create godoc
// @Summary Create a new album
// @Tags Album
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Album title"
// @Param description formData string true "Album description"
// @Param cover formData file true "Album cover"
// @Param images formData file false "Description images"
// @Success 201 {object} AlbumResponse
// @Failure 400,401,500 {object} response.ResponseMessage
// @Router /album [post]
func (h *Handler) Create(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	var req CreateAlbumRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.Create(c.Request.Context(), ac, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List albums by filter
// @Tags Album
// @Accept json
// @Produce json
// @Param filter body ListAlbumsRequest true "Album filters"
// @Success 200 {object} response.ResponseData[AlbumResponse]
// @Failure 400,401 {object} response.ResponseMessage
// @Router /albums [post]
func (h *Handler) List(c *gin.Context) {
	var filter ListAlbumsRequest
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	albums, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, albums, total)
}

// Update godoc
// @Summary Update an album
// @Tags Album
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} AlbumResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /album/{album_uuid} [post]
func (h *Handler) Update(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	albumUUID := c.Param("album_uuid")

	var req UpdateAlbumRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.Update(c.Request.Context(), ac, albumUUID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddImages godoc
// @Summary Add description images to an album
// @Tags Album
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} AlbumResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /album/{album_uuid}/add-images [post]
func (h *Handler) AddImages(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	albumUUID := c.Param("album_uuid")

	var req AddAlbumImagesRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.AddImages(c.Request.Context(), ac, albumUUID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoveImages godoc
// @Summary Remove description images from an album
// @Tags Album
// @Accept json
// @Produce json
// @Success 200 {object} AlbumResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /album/{album_uuid}/remove-images [post]
func (h *Handler) RemoveImages(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	albumUUID := c.Param("album_uuid")

	var req RemoveAlbumImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.RemoveImages(c.Request.Context(), ac, albumUUID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete an album and its assets
// @Tags Album
// @Produce json
// @Success 200 {object} response.ResponseMessage
// @Failure 401,404,500 {object} response.ResponseMessage
// @Router /album/{album_uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	albumUUID := c.Param("album_uuid")

	if err := h.service.Delete(c.Request.Context(), ac, albumUUID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Successfully deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAdminOnly):
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrAlbumNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateAlbum):
		response.Message(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrCoverRequired),
		errors.Is(err, ErrImagesRequired),
		errors.Is(err, ErrNoImageRemoved):
		response.Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrFilesLost):
		// The row is committed but assets are incomplete; the client has
		// to know the upload did not fully land.
		response.Message(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("album_error error=%q", err)
		response.Message(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
