package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CertificateStatus mirrors the CHECK constraint on certificates.status.
type CertificateStatus string

const (
	Active    CertificateStatus = "ACTIVE"
	Reverted  CertificateStatus = "REVERTED"
	Cancelled CertificateStatus = "CANCELLED"
)

// Certificate is a row of the certificates table, optionally joined with its work order.
type Certificate struct {
	CertificateID     int64             `json:"certificateID"`
	CertificateNumber int               `json:"certificateNumber"`
	WorkOrderID       int64             `json:"workOrderID"`
	CertificateDate   time.Time         `json:"certificateDate"`
	ContractNumber    string            `json:"contractNumber"`
	ContractorName    string            `json:"contractorName"`
	ContractValue     decimal.Decimal   `json:"contractValue"`
	PaidValue         decimal.Decimal   `json:"paidValue"`
	InvoiceTotal      decimal.Decimal   `json:"invoiceTotal"`
	FilePath          string            `json:"filePath"`
	GeneratedAt       time.Time         `json:"generatedAt"`
	Status            CertificateStatus `json:"status"`
	StatusComment     *string           `json:"statusComment"` // Nullable

	// Fields populated by joins with work_orders
	WorkOrderName     string `json:"workOrderName,omitempty"`
	WorkOrderCode     int    `json:"workOrderCode,omitempty"`
	ApprovalReference string `json:"approvalReference,omitempty"`
}

// InvoiceLine is a row of the invoice_lines table.
type InvoiceLine struct {
	InvoiceLineID int64           `json:"invoiceLineID"`
	CertificateID int64           `json:"certificateID"`
	Position      int             `json:"position"` // Insertion order within the certificate
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Code          *string         `json:"code"` // Nullable
}
