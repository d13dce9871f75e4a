package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/models"
)

// CategoryHandler serves business category CRUD endpoints.
type CategoryHandler struct {
	repo CategoryRepository
	log  *logrus.Logger
}

// NewCategoryHandler creates a CategoryHandler with the given repository and logger.
func NewCategoryHandler(repo CategoryRepository, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{repo: repo, log: log}
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	categories, err := h.repo.ListCategories(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing categories")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.list", "count": len(categories)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	category, err := h.repo.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "category not found")

			return
		}

		h.log.WithError(err).Error("getting category")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.get", "category_id": id}).Info("audit")

	c.JSON(http.StatusOK, category)
}

// GetByPath handles GET /api/v1/categories/by-path?path=.
func (h *CategoryHandler) GetByPath(c *gin.Context) {
	path := c.Query("path")
	if err := models.ValidateCategoryPath(path); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	category, err := h.repo.GetCategoryByPath(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "category not found")

			return
		}

		h.log.WithError(err).Error("getting category by path")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.get_by_path", "path": path}).Info("audit")

	c.JSON(http.StatusOK, category)
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	category, err := h.repo.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryPathExists) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "category with this path already exists")

			return
		}

		h.log.WithError(err).Error("creating category")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.create", "category_id": category.ID}).Info("audit")

	c.JSON(http.StatusCreated, category)
}

// Update handles PUT /api/v1/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	category, err := h.repo.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
		case errors.Is(err, models.ErrCategoryPathExists):
			respondError(c, http.StatusConflict, ErrCodeConflict, "category with this path already exists")
		default:
			h.log.WithError(err).Error("updating category")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.update", "category_id": id}).Info("audit")

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "category not found")

			return
		}

		h.log.WithError(err).Error("deleting category")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "category.delete", "category_id": id}).Info("audit")

	c.Status(http.StatusNoContent)
}
