package category

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

// Add godoc
// @Summary Add a category
// @Tags Category
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Success 201 {object} response.ResponseMessage
// @Failure 400,401,500 {object} response.ResponseMessage
// @Router /category [post]
func (h *Handler) Add(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	var req AddCategoryRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	if err := h.service.Add(c.Request.Context(), ac, &req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Successfully added")
}

// List godoc
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {object} response.ResponseData[CategoryResponse]
// @Router /categories [get]
func (h *Handler) List(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)
	categories, total, err := h.service.List(c.Request.Context(), ac)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.List(c, http.StatusOK, categories, total)
}

// Update godoc
// @Summary Update a category
// @Tags Category
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} CategoryResponse
// @Failure 400,401,404,500 {object} response.ResponseMessage
// @Router /category [put]
func (h *Handler) Update(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	var req UpdateCategoryRequest
	staging, err := h.engine.Ingest(c.Request, &req)
	if err != nil {
		response.Message(c, http.StatusBadRequest, err.Error())
		return
	}
	defer ingest.Discard(staging)

	resp, err := h.service.Update(c.Request.Context(), ac, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a category
// @Tags Category
// @Produce json
// @Success 200 {object} response.ResponseMessage
// @Failure 401,404,500 {object} response.ResponseMessage
// @Router /category/{category_id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ac := h.resolver.Resolve(c.Request)

	id, err := strconv.ParseInt(c.Param("category_id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), ac, int32(id)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Successfully deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAdminOnly):
		response.Message(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrCategoryNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNameRequired):
		response.Message(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("category_error error=%q", err)
		response.Message(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
