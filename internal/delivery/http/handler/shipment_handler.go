package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"battery-shipment-monitor/internal/usecase/admission"
	"battery-shipment-monitor/pkg/utils"
)

type ShipmentHandler struct {
	service *admission.Service
}

func NewShipmentHandler(service *admission.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.POST("", h.CreateShipment)
		shipments.GET("", h.ListShipments)
		shipments.GET("/:id", h.GetShipment)
		shipments.GET("/contract/:contractId", h.ListByContract)
	}
}

// CreateShipment runs the admission decision for a requested quantity.
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req admission.AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.InitiatedBy = requesterEmail(c)

	result, err := h.service.Admit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Shipment approved"
	if result.Status == "BLOCKED" {
		message = "Shipment blocked"
	}

	utils.SuccessResponse(c, http.StatusCreated, message, result)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	result, err := h.service.GetShipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	req := admission.ListShipmentsRequest{
		Status:     c.Query("status"),
		ContractID: c.Query("contract_id"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
	}

	results, total, err := h.service.ListShipments(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedSuccessResponse(c, http.StatusOK, results, req.Page, req.Limit, total)
}

func (h *ShipmentHandler) ListByContract(c *gin.Context) {
	req := admission.ListShipmentsRequest{
		ContractID: c.Param("contractId"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
	}

	results, total, err := h.service.ListShipments(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedSuccessResponse(c, http.StatusOK, results, req.Page, req.Limit, total)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
