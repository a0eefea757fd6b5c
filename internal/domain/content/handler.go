package content

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
// @Summary Add contents to an episode
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Param episode_id formData int true "Parent episode id"
// @Param files formData file true "Content files, one row per file"
// @Success 201 {array} ContentResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /content [post]
func (h *Handler) Create(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	var req AddEpisodeContentsRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.CreateForEpisode(c.Request.Context(), ac, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByEpisode godoc
// @Summary List an episode's contents in index order
// @Tags Content
// @Produce json
// @Success 200 {object} response.ResponseData[ContentResponse]
// @Failure 404,500 {object} response.ResponseMessage
// @Router /contents/{episode_uuid} [get]
func (h *Handler) ListByEpisode(c *gin.Context) {
	episodeUUID := c.Param("episode_uuid")

	contents, total, err := h.service.ListByEpisodeUUID(c.Request.Context(), episodeUUID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, contents, total)
}

// Update godoc
// @Summary Update a content row, optionally replacing its file
// @Tags Content
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} ContentResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /contents/{content_uuid} [put]
func (h *Handler) Update(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	contentUUID := c.Param("content_uuid")

	var req UpdateContentRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.Update(c.Request.Context(), ac, contentUUID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a content row and its file
// @Tags Content
// @Produce json
// @Success 200 {object} response.ResponseMessage
// @Failure 401,404,500 {object} response.ResponseMessage
// @Router /contents/{content_uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	contentUUID := c.Param("content_uuid")

	if err := h.service.Delete(c.Request.Context(), ac, contentUUID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Successfully deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAdminOnly):
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrContentNotFound), errors.Is(err, ErrEpisodeNotFound), errors.Is(err, ErrAlbumNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFilesRequired):
		response.Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrFilesLost):
		response.Message(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("content_error error=%q", err)
		response.Message(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
