package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainFleet "fleet-telematics-monitor/internal/domain/fleet"
	"fleet-telematics-monitor/internal/usecase/fleet"
	"fleet-telematics-monitor/pkg/utils"
)

type FleetHandler struct {
	service *fleet.Service
}

func NewFleetHandler(service *fleet.Service) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) RegisterRoutes(router *gin.RouterGroup) {
	cars := router.Group("/cars")
	{
		cars.GET("", h.ListCars)
		cars.GET("/:id", h.GetCar)
	}

	router.GET("/locations", h.ListLocations)
}

func (h *FleetHandler) ListCars(c *gin.Context) {
	result, err := h.service.ListCars(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list cars")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cars retrieved successfully", result)
}

func (h *FleetHandler) GetCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid car ID")
		return
	}

	result, err := h.service.GetCar(c.Request.Context(), carID)
	if err != nil {
		if errors.Is(err, domainFleet.ErrCarNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Car not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get car")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car retrieved successfully", result)
}

func (h *FleetHandler) ListLocations(c *gin.Context) {
	result, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list locations")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", result)
}
