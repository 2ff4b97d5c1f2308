package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainBooking "fleet-telematics-monitor/internal/domain/booking"
	"fleet-telematics-monitor/internal/usecase/booking"
	"fleet-telematics-monitor/pkg/utils"
)

type BookingHandler struct {
	service *booking.Service
}

func NewBookingHandler(service *booking.Service) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/keys", h.ListKeys)
		bookings.POST("/:id/keys", h.CreateKey)
	}

	keys := router.Group("/keys")
	{
		keys.GET("/:id", h.GetKey)
		keys.POST("/:id/operations", h.RecordKeyOperation)
		keys.GET("/:id/history", h.KeyHistory)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", result)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	carID, err := uuidQuery(c, "car_id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	startsAfter, err := timeQuery(c, "starts_after")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	endsBefore, err := timeQuery(c, "ends_before")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	page, pageSize := pagination(c)

	result, err := h.service.ListBookings(c.Request.Context(), &domainBooking.Filter{
		UserID:      userID,
		CarID:       carID,
		StartsAfter: startsAfter,
		EndsBefore:  endsBefore,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", result)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domainBooking.ErrBookingNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get booking")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", result)
}

func (h *BookingHandler) ListKeys(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	result, err := h.service.ListKeys(c.Request.Context(), bookingID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list keys")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Keys retrieved successfully", result)
}

func (h *BookingHandler) CreateKey(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req booking.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.BookingID = bookingID

	result, err := h.service.CreateKey(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domainBooking.ErrBookingNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Key allocated successfully", result)
}

func (h *BookingHandler) GetKey(c *gin.Context) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid key ID")
		return
	}

	result, err := h.service.GetKey(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, domainBooking.ErrKeyNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Key not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get key")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Key retrieved successfully", result)
}

func (h *BookingHandler) RecordKeyOperation(c *gin.Context) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid key ID")
		return
	}

	var req booking.RecordKeyOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RecordKeyOperation(c.Request.Context(), keyID, &req)
	if err != nil {
		if errors.Is(err, domainBooking.ErrKeyNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Key not found")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Key operation recorded successfully", result)
}

func (h *BookingHandler) KeyHistory(c *gin.Context) {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid key ID")
		return
	}

	result, err := h.service.KeyHistory(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, domainBooking.ErrKeyNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Key not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load key history")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Key history retrieved successfully", result)
}
