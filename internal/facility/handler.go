package facility

import (
	"errors"
	"net/http"

	"commonhub/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrFacilityNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
	case errors.Is(err, ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

// @Summary      Create a facility
// @Description  Admin-only: create a facility with its booking policy
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body facility.CreateFacilityRequest true "Facility payload"
// @Success      201 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/facilities [post]
func (h *Handler) CreateFacility(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	f, err := h.service.CreateFacility(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create facility")
		return
	}

	c.JSON(http.StatusCreated, f)
}

// @Summary      List facilities
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        community_id query string false "Community ID"
// @Success      200 {array} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /facilities [get]
func (h *Handler) ListFacilities(c *gin.Context) {
	var communityID *uuid.UUID
	if raw := c.Query("community_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid community ID"})
			return
		}
		communityID = &id
	}

	facilities, err := h.service.ListFacilities(c.Request.Context(), communityID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch facilities")
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// @Summary      Get a facility
// @Tags         facilities
// @Produce      json
// @Security     BearerAuth
// @Param        facilityID path string true "Facility ID"
// @Success      200 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /facilities/{facilityID} [get]
func (h *Handler) GetFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("facilityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	f, err := h.service.GetFacility(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch facility")
		return
	}

	c.JSON(http.StatusOK, f)
}

// @Summary      Update facility booking policy
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        facilityID path string true "Facility ID"
// @Param        request body facility.UpdateConfigRequest true "Config payload"
// @Success      200 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/facilities/{facilityID}/config [put]
func (h *Handler) UpdateConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("facilityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	f, err := h.service.UpdateConfig(c.Request.Context(), id, req.Config)
	if err != nil {
		h.respondError(c, err, "Failed to update facility")
		return
	}

	c.JSON(http.StatusOK, f)
}
