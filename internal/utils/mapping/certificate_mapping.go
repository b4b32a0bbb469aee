package mapping

import (
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/SscSPs/certificate_registry/internal/models"
)

// ToModelCertificate converts a domain Certificate to a model Certificate
func ToModelCertificate(d domain.Certificate) models.Certificate {
	return models.Certificate{
		CertificateID:     d.CertificateID,
		CertificateNumber: d.CertificateNumber,
		WorkOrderID:       d.WorkOrderID,
		CertificateDate:   d.Date,
		ContractNumber:    d.ContractNumber,
		ContractorName:    d.ContractorName,
		ContractValue:     d.ContractValue,
		PaidValue:         d.PaidValue,
		InvoiceTotal:      d.InvoiceTotal,
		FilePath:          d.FilePath,
		GeneratedAt:       d.GeneratedAt,
		Status:            models.CertificateStatus(d.Status),
		StatusComment:     d.StatusComment,
		WorkOrderName:     d.WorkOrderName,
		WorkOrderCode:     d.WorkOrderCode,
		ApprovalReference: d.ApprovalReference,
	}
}

// ToDomainCertificate converts a model Certificate to a domain Certificate
func ToDomainCertificate(m models.Certificate) domain.Certificate {
	return domain.Certificate{
		CertificateID:     m.CertificateID,
		CertificateNumber: m.CertificateNumber,
		WorkOrderID:       m.WorkOrderID,
		Date:              m.CertificateDate,
		ContractNumber:    m.ContractNumber,
		ContractorName:    m.ContractorName,
		ContractValue:     m.ContractValue,
		PaidValue:         m.PaidValue,
		InvoiceTotal:      m.InvoiceTotal,
		FilePath:          m.FilePath,
		GeneratedAt:       m.GeneratedAt,
		Status:            domain.CertificateStatus(m.Status),
		StatusComment:     m.StatusComment,
		WorkOrderName:     m.WorkOrderName,
		WorkOrderCode:     m.WorkOrderCode,
		ApprovalReference: m.ApprovalReference,
	}
}

// ToDomainCertificateSlice converts a slice of model Certificates to a slice of domain Certificates
func ToDomainCertificateSlice(ms []models.Certificate) []domain.Certificate {
	ds := make([]domain.Certificate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCertificate(m)
	}
	return ds
}

// ToModelInvoiceLines converts domain lines into model rows, assigning positions in slice order.
// Amounts are rounded the way the column stores them so the rows agree with SumInvoiceLines.
func ToModelInvoiceLines(certificateID int64, ds []domain.InvoiceLine) []models.InvoiceLine {
	ms := make([]models.InvoiceLine, len(ds))
	for i, d := range ds {
		ms[i] = models.InvoiceLine{
			CertificateID: certificateID,
			Position:      i + 1,
			Supplier:      d.Supplier,
			InvoiceNumber: d.InvoiceNumber,
			Amount:        domain.RoundMoney(d.Amount),
			Code:          d.Code,
		}
	}
	return ms
}

// ToDomainInvoiceLine converts a model InvoiceLine to a domain InvoiceLine
func ToDomainInvoiceLine(m models.InvoiceLine) domain.InvoiceLine {
	return domain.InvoiceLine{
		InvoiceLineID: m.InvoiceLineID,
		CertificateID: m.CertificateID,
		Supplier:      m.Supplier,
		InvoiceNumber: m.InvoiceNumber,
		Amount:        m.Amount,
		Code:          m.Code,
	}
}

// ToDomainInvoiceLineSlice converts a slice of model InvoiceLines to domain InvoiceLines
func ToDomainInvoiceLineSlice(ms []models.InvoiceLine) []domain.InvoiceLine {
	ds := make([]domain.InvoiceLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceLine(m)
	}
	return ds
}
