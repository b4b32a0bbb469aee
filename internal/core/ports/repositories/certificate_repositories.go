package repositories

import (
	"context"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
)

// CertificateNumberAllocator computes per-work-order certificate numbers.
type CertificateNumberAllocator interface {
	// NextCertificateNumber returns max(certificate_number)+1 for the work order, or 1 when it has none.
	// The value is not reserved: a concurrent insert may take it first, in which case
	// CreateCertificate fails with apperrors.ErrDuplicateCertificateNumber.
	NextCertificateNumber(ctx context.Context, workOrderID int64) (int, error)
}

// CertificateReader defines read operations for certificate data
type CertificateReader interface {
	// FindCertificateByID retrieves a certificate joined with its work order.
	FindCertificateByID(ctx context.Context, certificateID int64) (*domain.Certificate, error)

	// ListInvoiceLines retrieves the invoice lines of a certificate in insertion order.
	ListInvoiceLines(ctx context.Context, certificateID int64) ([]domain.InvoiceLine, error)

	// ListCertificatesByWorkOrder lists certificates of one work order, or of all work orders when
	// workOrderID is nil, ordered by work order name then certificate number descending.
	ListCertificatesByWorkOrder(ctx context.Context, workOrderID *int64) ([]domain.Certificate, error)

	// SearchCertificates applies the non-empty predicates of filter with AND semantics.
	SearchCertificates(ctx context.Context, filter domain.CertificateFilter) ([]domain.Certificate, error)
}

// CertificateWriter defines write operations for certificate data.
// Every method that touches more than one row runs in a single transaction.
type CertificateWriter interface {
	// CreateCertificate inserts the certificate (status ACTIVE, no comment) and its invoice lines.
	CreateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) (int64, error)

	// UpdateCertificate overwrites the mutable fields and replaces the invoice lines.
	// The certificate number, work order and generation time are never changed.
	UpdateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) error

	// ReplaceInvoiceLines deletes all lines of the certificate and inserts the given ones.
	ReplaceInvoiceLines(ctx context.Context, certificateID int64, lines []domain.InvoiceLine) error

	// UpdateCertificateStatus changes the status and status comment.
	UpdateCertificateStatus(ctx context.Context, certificateID int64, status domain.CertificateStatus, comment *string) error

	// UpdateCertificateFilePath records where the rendered artifact was written.
	UpdateCertificateFilePath(ctx context.Context, certificateID int64, filePath string) error

	// DeleteCertificate deletes the invoice lines and then the certificate.
	DeleteCertificate(ctx context.Context, certificateID int64) error
}

// CertificateRepositoryFacade combines all certificate-related repository interfaces
type CertificateRepositoryFacade interface {
	CertificateNumberAllocator
	CertificateReader
	CertificateWriter
}

// CertificateRepositoryWithTx extends CertificateRepositoryFacade with transaction capabilities
type CertificateRepositoryWithTx interface {
	CertificateRepositoryFacade
	TransactionManager
}
