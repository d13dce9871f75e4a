package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/metrics"
	"github.com/orgatlas/orgatlas/internal/models"
)

// OrganizationHandler serves organization CRUD and search endpoints.
type OrganizationHandler struct {
	repo OrganizationRepository
	log  *logrus.Logger
}

// NewOrganizationHandler creates an OrganizationHandler with the given repository and logger.
func NewOrganizationHandler(repo OrganizationRepository, log *logrus.Logger) *OrganizationHandler {
	return &OrganizationHandler{repo: repo, log: log}
}

// List handles GET /api/v1/organizations.
func (h *OrganizationHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	orgs, err := h.repo.ListOrganizations(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing organizations")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.list", "count": len(orgs)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// Get handles GET /api/v1/organizations/:id.
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	org, err := h.repo.GetOrganization(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")

			return
		}

		h.log.WithError(err).Error("getting organization")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.get", "organization_id": id}).Info("audit")

	c.JSON(http.StatusOK, org)
}

// GetByName handles GET /api/v1/organizations/by-name?name=.
func (h *OrganizationHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "name query parameter is required")

		return
	}

	org, err := h.repo.GetOrganizationByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")

			return
		}

		h.log.WithError(err).Error("getting organization by name")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.get_by_name", "name": name}).Info("audit")

	c.JSON(http.StatusOK, org)
}

// ListByBuilding handles GET /api/v1/organizations/by-building/:building_id.
func (h *OrganizationHandler) ListByBuilding(c *gin.Context) {
	buildingID, err := parseID(c.Param("building_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	orgs, err := h.repo.ListOrganizationsByBuilding(c.Request.Context(), buildingID)
	if err != nil {
		h.log.WithError(err).Error("listing organizations by building")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":      "organization.list_by_building",
		"building_id": buildingID,
		"count":       len(orgs),
	}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// FindByCategory handles GET /api/v1/organizations/by-category?path=.
// Matching includes the named category and all of its descendants.
func (h *OrganizationHandler) FindByCategory(c *gin.Context) {
	path := c.Query("path")
	if err := models.ValidateCategoryPath(path); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	orgs, err := h.repo.FindOrganizationsByCategoryPath(c.Request.Context(), path)
	if err != nil {
		h.log.WithError(err).Error("finding organizations by category")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "organization.find_by_category",
		"path":   path,
		"count":  len(orgs),
	}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// Create handles POST /api/v1/organizations.
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	org, err := h.repo.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrBuildingNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "building not found")

			return
		}

		h.log.WithError(err).Error("creating organization")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.OrganizationCount.Inc()
	h.log.WithFields(logrus.Fields{"action": "organization.create", "organization_id": org.ID}).Info("audit")

	c.JSON(http.StatusCreated, org)
}

// Update handles PUT /api/v1/organizations/:id.
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	org, err := h.repo.UpdateOrganization(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrOrganizationNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")
		case errors.Is(err, models.ErrBuildingNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "building not found")
		default:
			h.log.WithError(err).Error("updating organization")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.update", "organization_id": id}).Info("audit")

	c.JSON(http.StatusOK, org)
}

// Delete handles DELETE /api/v1/organizations/:id.
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteOrganization(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")

			return
		}

		h.log.WithError(err).Error("deleting organization")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.OrganizationCount.Dec()
	h.log.WithFields(logrus.Fields{"action": "organization.delete", "organization_id": id}).Info("audit")

	c.Status(http.StatusNoContent)
}

// FindInRadius handles POST /api/v1/organizations/find/radius.
func (h *OrganizationHandler) FindInRadius(c *gin.Context) {
	var q models.RadiusQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	orgs, err := h.repo.FindOrganizationsInRadius(c.Request.Context(), q)
	if err != nil {
		h.log.WithError(err).Error("organization radius search")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.find_radius", "count": len(orgs)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// FindInBBox handles POST /api/v1/organizations/find/bbox.
func (h *OrganizationHandler) FindInBBox(c *gin.Context) {
	var q models.BBoxQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	orgs, err := h.repo.FindOrganizationsInBBox(c.Request.Context(), q)
	if err != nil {
		h.log.WithError(err).Error("organization bbox search")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "organization.find_bbox", "count": len(orgs)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}
