package adaptor

import (
	"errors"
	"net/http"

	"hustlehub/internal/usecase"
	"hustlehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// ListServices handles GET /services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list services")
		return
	}

	utils.ResponseSuccess(w, services)
}

// GetService handles GET /services/{id}
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid service id")
		return
	}

	service, err := h.service.GetService(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get service")
		return
	}

	utils.ResponseSuccess(w, service)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, categories)
}

// GetCategory handles GET /categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category id")
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get category")
		return
	}

	utils.ResponseSuccess(w, category)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		utils.ResponseNotFound(w, "Service not found")
	case errors.Is(err, usecase.ErrCategoryNotFound):
		utils.ResponseNotFound(w, "Category not found")
	default:
		h.log.Error("Catalog handler error", zap.Error(err), zap.String("op", op))
		utils.ResponseInternalError(w, op)
	}
}
