package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/models"
)

// PhoneHandler serves phone number CRUD endpoints.
type PhoneHandler struct {
	repo PhoneNumberRepository
	log  *logrus.Logger
}

// NewPhoneHandler creates a PhoneHandler with the given repository and logger.
func NewPhoneHandler(repo PhoneNumberRepository, log *logrus.Logger) *PhoneHandler {
	return &PhoneHandler{repo: repo, log: log}
}

// List handles GET /api/v1/phone-numbers.
func (h *PhoneHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "100"), 100)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	phones, err := h.repo.ListPhoneNumbers(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing phone numbers")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "phone.list", "count": len(phones)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"phone_numbers": phones})
}

// Get handles GET /api/v1/phone-numbers/:id.
func (h *PhoneHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	phone, err := h.repo.GetPhoneNumber(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPhoneNumberNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "phone number not found")

			return
		}

		h.log.WithError(err).Error("getting phone number")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "phone.get", "phone_id": id}).Info("audit")

	c.JSON(http.StatusOK, phone)
}

// Create handles POST /api/v1/phone-numbers.
func (h *PhoneHandler) Create(c *gin.Context) {
	var req models.CreatePhoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	phone, err := h.repo.CreatePhoneNumber(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")

			return
		}

		h.log.WithError(err).Error("creating phone number")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":          "phone.create",
		"phone_id":        phone.ID,
		"organization_id": phone.OrganizationID,
	}).Info("audit")

	c.JSON(http.StatusCreated, phone)
}

// Update handles PUT /api/v1/phone-numbers/:id.
func (h *PhoneHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdatePhoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	phone, err := h.repo.UpdatePhoneNumber(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPhoneNumberNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "phone number not found")
		case errors.Is(err, models.ErrOrganizationNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "organization not found")
		default:
			h.log.WithError(err).Error("updating phone number")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "phone.update", "phone_id": id}).Info("audit")

	c.JSON(http.StatusOK, phone)
}

// Delete handles DELETE /api/v1/phone-numbers/:id.
func (h *PhoneHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeletePhoneNumber(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPhoneNumberNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "phone number not found")

			return
		}

		h.log.WithError(err).Error("deleting phone number")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "phone.delete", "phone_id": id}).Info("audit")

	c.Status(http.StatusNoContent)
}
