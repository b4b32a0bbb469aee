package dto

import (
	"time"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of certificate dates.
const DateLayout = "2006-01-02"

// InvoiceLineRequest is one invoice line as submitted by the form.
type InvoiceLineRequest struct {
	Supplier      string          `json:"supplier" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"gt=0,money"`
	Code          *string         `json:"code,omitempty"`
}

// CreateCertificateRequest defines the data needed to issue a certificate.
type CreateCertificateRequest struct {
	Date           string               `json:"date" binding:"required,datetime=2006-01-02"`
	ContractNumber string               `json:"contractNumber"`
	Contractor     string               `json:"contractor"`
	WorkOrderID    int64                `json:"workOrderID" binding:"required,gt=0"`
	ContractValue  decimal.Decimal      `json:"contractValue" binding:"gte=0,money"`
	PaidValue      decimal.Decimal      `json:"paidValue" binding:"gte=0,money"`
	InvoiceLines   []InvoiceLineRequest `json:"invoiceLines" binding:"required,min=1,dive"`
	FilePath       string               `json:"filePath,omitempty"`
}

// UpdateCertificateRequest overwrites every mutable field of a certificate.
// Work order and number are immutable and therefore absent.
type UpdateCertificateRequest struct {
	Date           string               `json:"date" binding:"required,datetime=2006-01-02"`
	ContractNumber string               `json:"contractNumber"`
	Contractor     string               `json:"contractor"`
	ContractValue  decimal.Decimal      `json:"contractValue" binding:"gte=0,money"`
	PaidValue      decimal.Decimal      `json:"paidValue" binding:"gte=0,money"`
	InvoiceLines   []InvoiceLineRequest `json:"invoiceLines" binding:"required,min=1,dive"`
	FilePath       string               `json:"filePath,omitempty"`
	Status         string               `json:"status" binding:"required,certificate_status"`
	StatusComment  *string              `json:"statusComment,omitempty"`
}

// ReplaceInvoiceLinesRequest replaces the invoice set of a certificate.
type ReplaceInvoiceLinesRequest struct {
	InvoiceLines []InvoiceLineRequest `json:"invoiceLines" binding:"required,min=1,dive"`
}

// UpdateStatusRequest changes the lifecycle status of a certificate.
type UpdateStatusRequest struct {
	Status        string  `json:"status" binding:"required,certificate_status"`
	StatusComment *string `json:"statusComment,omitempty"`
}

// AttachArtifactRequest records where the rendered document was stored.
type AttachArtifactRequest struct {
	FilePath string `json:"filePath" binding:"required"`
}

// SearchCertificatesParams are the query parameters of the certificate search.
type SearchCertificatesParams struct {
	WorkOrderIDs  []int64  `form:"workOrderID" binding:"omitempty,dive,gt=0"`
	Statuses      []string `form:"status" binding:"omitempty,dive,certificate_status"`
	DateFrom      string   `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo        string   `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Contractor    string   `form:"contractor"`
	CaseSensitive bool     `form:"caseSensitive"`
}

// ListCertificatesResponse wraps a certificate listing.
type ListCertificatesResponse struct {
	Certificates []domain.Certificate `json:"certificates"`
}

// CreateCertificateResponse is returned after a successful create.
type CreateCertificateResponse struct {
	CertificateID     int64                    `json:"certificateID"`
	CertificateNumber int                      `json:"certificateNumber"`
	Report            domain.CertificateReport `json:"report"`
}

// ToDomainInvoiceLines converts request lines to domain lines, preserving order.
func ToDomainInvoiceLines(reqs []InvoiceLineRequest) []domain.InvoiceLine {
	lines := make([]domain.InvoiceLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.InvoiceLine{
			Supplier:      r.Supplier,
			InvoiceNumber: r.InvoiceNumber,
			Amount:        r.Amount,
			Code:          r.Code,
		}
	}
	return lines
}

// ParseDate parses a DateLayout string. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToDomainFilter converts search params into a filter.
func (p SearchCertificatesParams) ToDomainFilter() (domain.CertificateFilter, error) {
	filter := domain.CertificateFilter{
		WorkOrderIDs:            p.WorkOrderIDs,
		Contractor:              p.Contractor,
		ContractorCaseSensitive: p.CaseSensitive,
	}
	for _, s := range p.Statuses {
		filter.Statuses = append(filter.Statuses, domain.CertificateStatus(s))
	}
	var err error
	if filter.DateFrom, err = ParseDate(p.DateFrom); err != nil {
		return domain.CertificateFilter{}, err
	}
	if filter.DateTo, err = ParseDate(p.DateTo); err != nil {
		return domain.CertificateFilter{}, err
	}
	return filter, nil
}
