package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
	"github.com/SscSPs/certificate_registry/internal/dto"
	"github.com/SscSPs/certificate_registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

// certificateHandler handles HTTP requests related to payment certificates.
type certificateHandler struct {
	certificateService portssvc.CertificateSvcFacade
}

// RegisterCertificateRoutes registers routes related to certificates.
func RegisterCertificateRoutes(rg *gin.RouterGroup, certificateService portssvc.CertificateSvcFacade) {
	h := &certificateHandler{certificateService: certificateService}

	certificates := rg.Group("/certificates")
	{
		certificates.POST("", h.createCertificate)
		certificates.GET("", h.searchCertificates)
		certificates.GET("/:certificateID", h.getCertificate)
		certificates.PUT("/:certificateID", h.updateCertificate)
		certificates.PUT("/:certificateID/invoice-lines", h.replaceInvoiceLines)
		certificates.PATCH("/:certificateID/status", h.updateStatus)
		certificates.PATCH("/:certificateID/artifact", h.attachArtifact)
		certificates.DELETE("/:certificateID", h.deleteCertificate)
	}
}

// createCertificate godoc
// @Summary Issue a certificate
// @Description Assigns the next number of the work order and stores the certificate with its invoice lines
// @Tags certificates
// @Accept json
// @Produce json
// @Param certificate body dto.CreateCertificateRequest true "Certificate data"
// @Success 201 {object} dto.CreateCertificateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Certificate number taken concurrently; resubmit"
// @Failure 422 {object} map[string]string "Unknown work order"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /certificates [post]
func (h *certificateHandler) createCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCertificate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.certificateService.CreateCertificate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create certificate")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCertificateResponse{
		CertificateID:     report.Certificate.CertificateID,
		CertificateNumber: report.Certificate.CertificateNumber,
		Report:            *report,
	})
}

// searchCertificates godoc
// @Summary Search certificates
// @Description All predicates are optional and combined with AND. Results are ordered by work order name, then number descending.
// @Tags certificates
// @Produce json
// @Param workOrderID query []int false "Work order IDs" collectionFormat(multi)
// @Param status query []string false "Statuses" collectionFormat(multi) Enums(ACTIVE, REVERTED, CANCELLED)
// @Param dateFrom query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param contractor query string false "Contractor name substring"
// @Param caseSensitive query bool false "Match the contractor substring case-sensitively"
// @Success 200 {object} dto.ListCertificatesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /certificates [get]
func (h *certificateHandler) searchCertificates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchCertificatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind certificate search", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	certs, err := h.certificateService.SearchCertificates(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to search certificates")
		return
	}
	c.JSON(http.StatusOK, dto.ListCertificatesResponse{Certificates: certs})
}

// getCertificate godoc
// @Summary Get a certificate report
// @Description Returns the certificate, its work order, work-object code and invoice lines
// @Tags certificates
// @Produce json
// @Param certificateID path int true "Certificate ID"
// @Success 200 {object} domain.CertificateReport
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID} [get]
func (h *certificateHandler) getCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}

	report, err := h.certificateService.GetCertificate(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to get certificate")
		return
	}
	c.JSON(http.StatusOK, report)
}

// updateCertificate godoc
// @Summary Update a certificate
// @Description Overwrites every mutable field and replaces the invoice lines. Number and work order never change.
// @Tags certificates
// @Accept json
// @Produce json
// @Param certificateID path int true "Certificate ID"
// @Param certificate body dto.UpdateCertificateRequest true "Certificate data"
// @Success 200 {object} domain.CertificateReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID} [put]
func (h *certificateHandler) updateCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}
	var req dto.UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCertificate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.certificateService.UpdateCertificate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to update certificate")
		return
	}
	c.JSON(http.StatusOK, report)
}

// replaceInvoiceLines godoc
// @Summary Replace invoice lines
// @Description Atomically replaces the whole invoice line set and recomputes the invoice total
// @Tags certificates
// @Accept json
// @Produce json
// @Param certificateID path int true "Certificate ID"
// @Param lines body dto.ReplaceInvoiceLinesRequest true "New invoice lines"
// @Success 200 {object} domain.CertificateReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID}/invoice-lines [put]
func (h *certificateHandler) replaceInvoiceLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}
	var req dto.ReplaceInvoiceLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceInvoiceLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.certificateService.ReplaceInvoiceLines(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to replace invoice lines")
		return
	}
	c.JSON(http.StatusOK, report)
}

// updateStatus godoc
// @Summary Change certificate status
// @Tags certificates
// @Accept json
// @Param certificateID path int true "Certificate ID"
// @Param status body dto.UpdateStatusRequest true "Status and comment"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID}/status [patch]
func (h *certificateHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.certificateService.UpdateStatus(c.Request.Context(), id, req); err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to update certificate status")
		return
	}
	c.Status(http.StatusNoContent)
}

// attachArtifact godoc
// @Summary Record the rendered document
// @Description Stores the path of the document produced for the certificate
// @Tags certificates
// @Accept json
// @Param certificateID path int true "Certificate ID"
// @Param artifact body dto.AttachArtifactRequest true "Artifact location"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID}/artifact [patch]
func (h *certificateHandler) attachArtifact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}
	var req dto.AttachArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AttachArtifact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.certificateService.AttachArtifact(c.Request.Context(), id, req); err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to record artifact")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCertificate godoc
// @Summary Delete a certificate
// @Description Removes the certificate and its invoice lines. The number is not reused unless it was the highest.
// @Tags certificates
// @Param certificateID path int true "Certificate ID"
// @Success 204
// @Failure 404 {object} map[string]string "Certificate not found"
// @Security BearerAuth
// @Router /certificates/{certificateID} [delete]
func (h *certificateHandler) deleteCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "certificateID")
	if !ok {
		return
	}

	if err := h.certificateService.DeleteCertificate(c.Request.Context(), id); err != nil {
		respondError(c, logger.With(slog.Int64("certificate_id", id)), err, "Failed to delete certificate")
		return
	}
	c.Status(http.StatusNoContent)
}
