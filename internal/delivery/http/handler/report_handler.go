package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-telematics-monitor/internal/usecase/report"
	"fleet-telematics-monitor/pkg/utils"
)

type ReportHandler struct {
	service *report.Service
}

func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/trips", h.TripReport)
		reports.GET("/alerts", h.AlertReport)
	}
}

func (h *ReportHandler) TripReport(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.TripSummaries(c.Request.Context(), scope)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip report built successfully", result)
}

func (h *ReportHandler) AlertReport(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.AlertSummaries(c.Request.Context(), scope)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert report built successfully", result)
}

func parseScope(c *gin.Context) (*report.Scope, error) {
	carID, err := uuidQuery(c, "car_id")
	if err != nil {
		return nil, err
	}
	userID, err := uuidQuery(c, "user_id")
	if err != nil {
		return nil, err
	}
	bookingID, err := uuidQuery(c, "booking_id")
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

	return &report.Scope{
		CarID:        carID,
		UserID:       userID,
		BookingID:    bookingID,
		DeviceSerial: stringQuery(c, "device_serial"),
		From:         from,
		To:           to,
	}, nil
}
