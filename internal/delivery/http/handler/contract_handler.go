package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"battery-shipment-monitor/internal/usecase/contract"
	"battery-shipment-monitor/pkg/utils"
)

type ContractHandler struct {
	service *contract.Service
}

func NewContractHandler(service *contract.Service) *ContractHandler {
	return &ContractHandler{service: service}
}

func (h *ContractHandler) RegisterRoutes(router *gin.RouterGroup) {
	contracts := router.Group("/contracts")
	{
		contracts.GET("", h.ListContracts)
		contracts.GET("/:id", h.GetContract)
	}
}

// RegisterAdminRoutes registers the mutating contract operations.
func (h *ContractHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	contracts := router.Group("/contracts")
	{
		contracts.POST("", h.CreateContract)
		contracts.PUT("/:id", h.UpdateContract)
		contracts.PATCH("/:id/toggle-lock", h.ToggleLock)
		contracts.DELETE("/:id", h.DeleteContract)
	}
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	results, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req contract.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Contract created successfully", result)
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var req contract.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateDeviceCount(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract updated successfully", result)
}

func (h *ContractHandler) ToggleLock(c *gin.Context) {
	result, err := h.service.ToggleLock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Contract unlocked successfully"
	if result.IsLocked {
		message = "Contract locked successfully"
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract deleted successfully", nil)
}
