package services

import (
	"context"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/SscSPs/certificate_registry/internal/dto"
)

// CertificateReaderSvc defines read operations for certificates
type CertificateReaderSvc interface {
	// GetCertificate returns the certificate, its work order and invoice lines.
	GetCertificate(ctx context.Context, certificateID int64) (*domain.CertificateReport, error)

	// ListCertificates lists certificates of a work order, or all when workOrderID is nil.
	ListCertificates(ctx context.Context, workOrderID *int64) ([]domain.Certificate, error)

	// SearchCertificates runs a multi-predicate search.
	SearchCertificates(ctx context.Context, params dto.SearchCertificatesParams) ([]domain.Certificate, error)

	// NextCertificateNumber previews the number the next certificate of the work order would get.
	NextCertificateNumber(ctx context.Context, workOrderID int64) (int, error)
}

// CertificateWriterSvc defines write operations for certificates
type CertificateWriterSvc interface {
	// CreateCertificate allocates the next number for the work order and persists the certificate.
	// A lost numbering race returns apperrors.ErrDuplicateCertificateNumber and is not retried.
	CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest) (*domain.CertificateReport, error)

	// UpdateCertificate overwrites the mutable fields and the invoice lines.
	UpdateCertificate(ctx context.Context, certificateID int64, req dto.UpdateCertificateRequest) (*domain.CertificateReport, error)

	// ReplaceInvoiceLines swaps the whole invoice line set.
	ReplaceInvoiceLines(ctx context.Context, certificateID int64, req dto.ReplaceInvoiceLinesRequest) (*domain.CertificateReport, error)

	// UpdateStatus changes the status and its comment.
	UpdateStatus(ctx context.Context, certificateID int64, req dto.UpdateStatusRequest) error

	// AttachArtifact records the location of the rendered document.
	AttachArtifact(ctx context.Context, certificateID int64, req dto.AttachArtifactRequest) error

	// DeleteCertificate removes the certificate and its invoice lines.
	DeleteCertificate(ctx context.Context, certificateID int64) error
}

// CertificateSvcFacade combines all certificate service interfaces
type CertificateSvcFacade interface {
	CertificateReaderSvc
	CertificateWriterSvc
}
