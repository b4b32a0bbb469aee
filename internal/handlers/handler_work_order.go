package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
	"github.com/SscSPs/certificate_registry/internal/dto"
	"github.com/SscSPs/certificate_registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workOrderHandler handles HTTP requests related to the work order registry.
type workOrderHandler struct {
	workOrderService   portssvc.WorkOrderSvcFacade
	certificateService portssvc.CertificateReaderSvc
}

// RegisterWorkOrderRoutes registers routes related to work orders.
func RegisterWorkOrderRoutes(rg *gin.RouterGroup, workOrderService portssvc.WorkOrderSvcFacade, certificateService portssvc.CertificateReaderSvc) {
	h := &workOrderHandler{
		workOrderService:   workOrderService,
		certificateService: certificateService,
	}

	workOrders := rg.Group("/work-orders")
	{
		workOrders.GET("", h.listWorkOrders)
		workOrders.GET("/lookup", h.lookupWorkOrder)
		workOrders.GET("/:workOrderID/next-number", h.nextCertificateNumber)
	}
}

// listWorkOrders godoc
// @Summary List work orders
// @Description Lists every work order ordered by name, with its work-object code
// @Tags work-orders
// @Produce json
// @Success 200 {array} dto.WorkOrderResponse
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /work-orders [get]
func (h *workOrderHandler) listWorkOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	workOrders, err := h.workOrderService.ListWorkOrders(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list work orders")
		return
	}

	logger.Info("Work orders listed", slog.Int("count", len(workOrders)))
	c.JSON(http.StatusOK, dto.ToWorkOrderResponses(workOrders))
}

// lookupWorkOrder godoc
// @Summary Resolve a work order
// @Description Resolves the id of the work order with exactly this name and code
// @Tags work-orders
// @Produce json
// @Param name query string true "Work order name"
// @Param code query int true "Work order code"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Work order not found"
// @Security BearerAuth
// @Router /work-orders/lookup [get]
func (h *workOrderHandler) lookupWorkOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FindWorkOrderParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind work order lookup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	id, err := h.workOrderService.FindWorkOrderID(c.Request.Context(), params.Name, params.Code)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve work order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workOrderID": id})
}

// nextCertificateNumber godoc
// @Summary Preview the next certificate number
// @Description Returns the number the next certificate of the work order would receive. Not a reservation.
// @Tags work-orders
// @Produce json
// @Param workOrderID path int true "Work order ID"
// @Success 200 {object} dto.NextNumberResponse
// @Failure 404 {object} map[string]string "Work order not found"
// @Security BearerAuth
// @Router /work-orders/{workOrderID}/next-number [get]
func (h *workOrderHandler) nextCertificateNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workOrderID, ok := parseIDParam(c, "workOrderID")
	if !ok {
		return
	}

	n, err := h.certificateService.NextCertificateNumber(c.Request.Context(), workOrderID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute next certificate number")
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{WorkOrderID: workOrderID, CertificateNumber: n})
}
