package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/metrics"
	"github.com/orgatlas/orgatlas/internal/models"
)

// BuildingHandler serves building CRUD and geosearch endpoints.
type BuildingHandler struct {
	repo BuildingRepository
	log  *logrus.Logger
}

// NewBuildingHandler creates a BuildingHandler with the given repository and logger.
func NewBuildingHandler(repo BuildingRepository, log *logrus.Logger) *BuildingHandler {
	return &BuildingHandler{repo: repo, log: log}
}

// List handles GET /api/v1/buildings.
func (h *BuildingHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	buildings, err := h.repo.ListBuildings(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing buildings")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "building.list", "count": len(buildings)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"buildings": buildings})
}

// Get handles GET /api/v1/buildings/:id.
func (h *BuildingHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	building, err := h.repo.GetBuilding(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBuildingNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "building not found")

			return
		}

		h.log.WithError(err).Error("getting building")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "building.get", "building_id": id}).Info("audit")

	c.JSON(http.StatusOK, building)
}

// Create handles POST /api/v1/buildings.
func (h *BuildingHandler) Create(c *gin.Context) {
	var req models.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	building, err := h.repo.CreateBuilding(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrAddressExists) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "building with this address already exists")

			return
		}

		h.log.WithError(err).Error("creating building")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.BuildingCount.Inc()
	h.log.WithFields(logrus.Fields{"action": "building.create", "building_id": building.ID}).Info("audit")

	c.JSON(http.StatusCreated, building)
}

// Update handles PUT /api/v1/buildings/:id.
func (h *BuildingHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	building, err := h.repo.UpdateBuilding(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBuildingNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "building not found")
		case errors.Is(err, models.ErrAddressExists):
			respondError(c, http.StatusConflict, ErrCodeConflict, "building with this address already exists")
		default:
			h.log.WithError(err).Error("updating building")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "building.update", "building_id": id}).Info("audit")

	c.JSON(http.StatusOK, building)
}

// Delete handles DELETE /api/v1/buildings/:id.
func (h *BuildingHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteBuilding(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, models.ErrBuildingNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "building not found")
		case errors.Is(err, models.ErrOrganizationsExist):
			respondError(c, http.StatusConflict, ErrCodeConflict, "building still has organizations")
		default:
			h.log.WithError(err).Error("deleting building")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	metrics.BuildingCount.Dec()
	h.log.WithFields(logrus.Fields{"action": "building.delete", "building_id": id}).Info("audit")

	c.Status(http.StatusNoContent)
}

// FindInRadius handles POST /api/v1/buildings/find/radius.
func (h *BuildingHandler) FindInRadius(c *gin.Context) {
	var q models.RadiusQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	buildings, err := h.repo.FindBuildingsInRadius(c.Request.Context(), q)
	if err != nil {
		h.log.WithError(err).Error("building radius search")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "building.find_radius", "count": len(buildings)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"buildings": buildings})
}

// FindInBBox handles POST /api/v1/buildings/find/bbox.
func (h *BuildingHandler) FindInBBox(c *gin.Context) {
	var q models.BBoxQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	buildings, err := h.repo.FindBuildingsInBBox(c.Request.Context(), q)
	if err != nil {
		h.log.WithError(err).Error("building bbox search")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "building.find_bbox", "count": len(buildings)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"buildings": buildings})
}
