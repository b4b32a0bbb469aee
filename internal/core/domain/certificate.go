package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CertificateStatus is the lifecycle flag of a certificate. It is recorded for audit
// and never affects numbering.
type CertificateStatus string

const (
	StatusActive    CertificateStatus = "ACTIVE"
	StatusReverted  CertificateStatus = "REVERTED"
	StatusCancelled CertificateStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known statuses.
func (s CertificateStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusReverted, StatusCancelled:
		return true
	}
	return false
}

// Certificate attests that a set of invoices corresponds to authorized legal documents
// for a given work order.
type Certificate struct {
	CertificateID     int64             `json:"certificateID"`     // Primary Key
	CertificateNumber int               `json:"certificateNumber"` // Unique within WorkOrderID
	WorkOrderID       int64             `json:"workOrderID"`
	Date              time.Time         `json:"date"`
	ContractNumber    string            `json:"contractNumber"`
	ContractorName    string            `json:"contractorName"`
	ContractValue     decimal.Decimal   `json:"contractValue"`
	PaidValue         decimal.Decimal   `json:"paidValue"`
	InvoiceTotal      decimal.Decimal   `json:"invoiceTotal"` // Always sum of invoice line amounts
	FilePath          string            `json:"filePath"`
	GeneratedAt       time.Time         `json:"generatedAt"` // Set once at creation
	Status            CertificateStatus `json:"status"`
	StatusComment     *string           `json:"statusComment"`

	// Joined from work_orders on reads; empty on writes.
	WorkOrderName     string `json:"workOrderName,omitempty"`
	WorkOrderCode     int    `json:"workOrderCode,omitempty"`
	ApprovalReference string `json:"approvalReference,omitempty"`
}

// InvoiceLine is one supplier invoice attached to a certificate.
type InvoiceLine struct {
	InvoiceLineID int64           `json:"invoiceLineID"`
	CertificateID int64           `json:"certificateID"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Code          *string         `json:"code"`
}

// MoneyScale is the number of fractional digits money columns keep.
const MoneyScale int32 = 2

// RoundMoney rounds d half away from zero to MoneyScale digits, as NUMERIC(18,2) does on write.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// SumInvoiceLines returns the total of the given lines as they are stored, each amount
// rounded to MoneyScale first.
func SumInvoiceLines(lines []InvoiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(RoundMoney(l.Amount))
	}
	return total
}

// CertificateFilter holds the optional predicates of a certificate search.
// Nil or empty fields are not applied.
type CertificateFilter struct {
	WorkOrderIDs []int64
	Statuses     []CertificateStatus
	DateFrom     *time.Time
	DateTo       *time.Time
	Contractor   string
	// ContractorCaseSensitive switches the contractor substring match from
	// case-insensitive (default) to case-sensitive.
	ContractorCaseSensitive bool
}

// CertificateReport is the flat structure handed to the document renderer.
type CertificateReport struct {
	Certificate    Certificate   `json:"certificate"`
	WorkOrder      WorkOrder     `json:"workOrder"`
	WorkObjectCode string        `json:"workObjectCode"`
	InvoiceLines   []InvoiceLine `json:"invoiceLines"`
}

// NewCertificateReport assembles a report from a certificate read (with joined work order fields)
// and its lines.
func NewCertificateReport(cert Certificate, lines []InvoiceLine) CertificateReport {
	wo := WorkOrder{
		WorkOrderID:       cert.WorkOrderID,
		Name:              cert.WorkOrderName,
		Code:              cert.WorkOrderCode,
		ApprovalReference: cert.ApprovalReference,
	}
	if lines == nil {
		lines = []InvoiceLine{}
	}
	return CertificateReport{
		Certificate:    cert,
		WorkOrder:      wo,
		WorkObjectCode: wo.WorkObjectCode(),
		InvoiceLines:   lines,
	}
}
