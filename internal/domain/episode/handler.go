package episode

import (
	"errors"
	"log"
	"net/http"
	"strconv"

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
// @Summary Create an episode
// @Tags Episode
// @Accept multipart/form-data
// @Produce json
// @Param album_id formData int true "Parent album id"
// @Param title formData string true "Episode title"
// @Param file formData file false "Episode media file"
// @Success 201 {object} EpisodeResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /episode [post]
func (h *Handler) Create(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	var req CreateEpisodeRequest
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

// ListByAlbum godoc
// @Summary List an album's episodes
// @Tags Episode
// @Accept json
// @Produce json
// @Success 200 {object} response.ResponseData[EpisodeResponse]
// @Router /episodes/{album_id} [post]
func (h *Handler) ListByAlbum(c *gin.Context) {
	albumID, err := strconv.ParseInt(c.Param("album_id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid album id")
		return
	}

	var filter FilterEpisodesRequest
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	episodes, total, err := h.service.ListByAlbumID(c.Request.Context(), int32(albumID), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, episodes, total)
}

// Update godoc
// @Summary Update an episode
// @Tags Episode
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} EpisodeResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /episode/{episode_uuid} [put]
func (h *Handler) Update(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	episodeUUID := c.Param("episode_uuid")

	var req UpdateEpisodeRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.Update(c.Request.Context(), ac, episodeUUID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete an episode and its assets
// @Tags Episode
// @Produce json
// @Success 200 {object} response.ResponseMessage
// @Failure 401,404,500 {object} response.ResponseMessage
// @Router /episode/{episode_uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	episodeUUID := c.Param("episode_uuid")

	if err := h.service.Delete(c.Request.Context(), ac, episodeUUID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Successfully deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAdminOnly):
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrEpisodeNotFound), errors.Is(err, ErrAlbumNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFilesLost):
		response.Message(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("episode_error error=%q", err)
		response.Message(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
