package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainTelemetry "fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/usecase/telemetry"
	"fleet-telematics-monitor/pkg/utils"
)

type TelemetryHandler struct {
	service *telemetry.Service
}

func NewTelemetryHandler(service *telemetry.Service) *TelemetryHandler {
	return &TelemetryHandler{service: service}
}

func (h *TelemetryHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/:id", h.GetEvent)
	}

	trips := router.Group("/trips")
	{
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
	}

	router.GET("/devices", h.ListDevices)
}

func (h *TelemetryHandler) ListEvents(c *gin.Context) {
	filter, err := parseEventFilter(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.ListEvents(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list events")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Events retrieved successfully", result)
}

func (h *TelemetryHandler) GetEvent(c *gin.Context) {
	result, err := h.service.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainTelemetry.ErrEventNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Event not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get event")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event retrieved successfully", result)
}

func (h *TelemetryHandler) ListTrips(c *gin.Context) {
	filter, err := parseTripFilter(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.ListTrips(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list trips")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

func (h *TelemetryHandler) GetTrip(c *gin.Context) {
	result, err := h.service.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainTelemetry.ErrTripNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Trip not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get trip")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", result)
}

func (h *TelemetryHandler) ListDevices(c *gin.Context) {
	result, err := h.service.ListDevices(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list devices")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Devices retrieved successfully", result)
}

func parseEventFilter(c *gin.Context) (*domainTelemetry.EventFilter, error) {
	carID, err := uuidQuery(c, "car_id")
	if err != nil {
		return nil, err
	}
	bookingID, err := uuidQuery(c, "booking_id")
	if err != nil {
		return nil, err
	}
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		return nil, err
	}
	hasUser, err := boolQuery(c, "has_user")
	if err != nil {
		return nil, err
	}
	from, err := timeQuery(c, "from")
	if err != nil {
		return nil, err
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		return nil, err
	}

	var eventType *domainTelemetry.EventType
	if raw := c.Query("type"); raw != "" {
		t := domainTelemetry.EventType(raw)
		eventType = &t
	}

	page, pageSize := pagination(c)

	return &domainTelemetry.EventFilter{
		DeviceSerial: stringQuery(c, "device_serial"),
		CarID:        carID,
		BookingID:    bookingID,
		UserID:       userID,
		Type:         eventType,
		HasUser:      hasUser,
		From:         from,
		To:           to,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func parseTripFilter(c *gin.Context) (*domainTelemetry.TripFilter, error) {
	carID, err := uuidQuery(c, "car_id")
	if err != nil {
		return nil, err
	}
	bookingID, err := uuidQuery(c, "booking_id")
	if err != nil {
		return nil, err
	}
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		return nil, err
	}
	leafOnly, err := boolQuery(c, "leaf_only")
	if err != nil {
		return nil, err
	}
	from, err := timeQuery(c, "from")
	if err != nil {
		return nil, err
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		return nil, err
	}

	page, pageSize := pagination(c)

	filter := &domainTelemetry.TripFilter{
		DeviceSerial: stringQuery(c, "device_serial"),
		CarID:        carID,
		BookingID:    bookingID,
		UserID:       userID,
		State:        stringQuery(c, "state"),
		From:         from,
		To:           to,
		Page:         page,
		PageSize:     pageSize,
	}
	if leafOnly != nil {
		filter.LeafOnly = *leafOnly
	}
	return filter, nil
}
