package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
	"github.com/SscSPs/certificate_registry/internal/dto"
	"github.com/SscSPs/certificate_registry/internal/utils/validation"
	"github.com/go-playground/validator/v10"
)

// certificateService implements the CertificateSvcFacade interface
type certificateService struct {
	BaseService
	certificateRepo portsrepo.CertificateRepositoryFacade
	workOrderRepo   portsrepo.WorkOrderReader
	validate        *validator.Validate
	now             func() time.Time
}

// CertificateServiceOption is a functional option for configuring the certificate service
type CertificateServiceOption func(*certificateService)

// WithClock overrides the clock used to stamp generatedAt.
func WithClock(now func() time.Time) CertificateServiceOption {
	return func(s *certificateService) {
		s.now = now
	}
}

// NewCertificateService creates a new certificate service with the provided options
func NewCertificateService(
	certificateRepo portsrepo.CertificateRepositoryFacade,
	workOrderRepo portsrepo.WorkOrderReader,
	options ...CertificateServiceOption,
) portssvc.CertificateSvcFacade {
	svc := &certificateService{
		certificateRepo: certificateRepo,
		workOrderRepo:   workOrderRepo,
		validate:        validation.New(),
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CertificateSvcFacade = (*certificateService)(nil)

func (s *certificateService) validateInput(ctx context.Context, input interface{}, op string) error {
	if err := s.validate.Struct(input); err != nil {
		s.LogWarn(ctx, "Rejected certificate input", slog.String("operation", op), slog.String("error", err.Error()))
		return apperrors.NewValidationError("invalid "+op+" input", err)
	}
	return nil
}

func parseCertificateDate(raw string) (time.Time, error) {
	date, err := dto.ParseDate(raw)
	if err != nil || date == nil {
		return time.Time{}, apperrors.NewValidationError("date must use the format "+dto.DateLayout, err)
	}
	return *date, nil
}

// CreateCertificate allocates the next number for the work order and persists the certificate.
// The allocation and the insert are separate round trips: a concurrent create for the same work
// order may win the number, in which case the unique constraint rejects this insert and the
// caller is expected to resubmit.
func (s *certificateService) CreateCertificate(ctx context.Context, req dto.CreateCertificateRequest) (*domain.CertificateReport, error) {
	if err := s.validateInput(ctx, req, "certificate"); err != nil {
		return nil, err
	}
	date, err := parseCertificateDate(req.Date)
	if err != nil {
		return nil, err
	}

	logger := s.GetLogger(ctx).With(slog.Int64("work_order_id", req.WorkOrderID))

	if _, err := s.workOrderRepo.FindWorkOrderByID(ctx, req.WorkOrderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewWorkOrderNotFoundError(req.WorkOrderID, err)
		}
		s.LogError(ctx, err, "Failed to look up work order", slog.Int64("work_order_id", req.WorkOrderID))
		return nil, err
	}

	number, err := s.certificateRepo.NextCertificateNumber(ctx, req.WorkOrderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate certificate number", slog.Int64("work_order_id", req.WorkOrderID))
		return nil, err
	}

	lines := dto.ToDomainInvoiceLines(req.InvoiceLines)
	cert := domain.Certificate{
		CertificateNumber: number,
		WorkOrderID:       req.WorkOrderID,
		Date:              date,
		ContractNumber:    req.ContractNumber,
		ContractorName:    req.Contractor,
		ContractValue:     req.ContractValue,
		PaidValue:         req.PaidValue,
		InvoiceTotal:      domain.SumInvoiceLines(lines),
		FilePath:          req.FilePath,
		GeneratedAt:       s.now(),
		Status:            domain.StatusActive,
	}

	certificateID, err := s.certificateRepo.CreateCertificate(ctx, cert, lines)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCertificateNumber) {
			logger.Warn("Certificate number taken by a concurrent create", slog.Int("certificate_number", number))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create certificate", slog.Int64("work_order_id", req.WorkOrderID))
		return nil, err
	}

	logger.Info("Certificate created",
		slog.Int64("certificate_id", certificateID),
		slog.Int("certificate_number", number),
		slog.String("invoice_total", cert.InvoiceTotal.StringFixed(2)))

	return s.loadReport(ctx, certificateID)
}

func (s *certificateService) GetCertificate(ctx context.Context, certificateID int64) (*domain.CertificateReport, error) {
	return s.loadReport(ctx, certificateID)
}

func (s *certificateService) loadReport(ctx context.Context, certificateID int64) (*domain.CertificateReport, error) {
	cert, err := s.certificateRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read certificate", slog.Int64("certificate_id", certificateID))
		}
		return nil, err
	}
	lines, err := s.certificateRepo.ListInvoiceLines(ctx, certificateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read invoice lines", slog.Int64("certificate_id", certificateID))
		return nil, err
	}
	report := domain.NewCertificateReport(*cert, lines)
	return &report, nil
}

func (s *certificateService) ListCertificates(ctx context.Context, workOrderID *int64) ([]domain.Certificate, error) {
	certs, err := s.certificateRepo.ListCertificatesByWorkOrder(ctx, workOrderID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list certificates")
		return nil, err
	}
	if certs == nil {
		return []domain.Certificate{}, nil
	}
	return certs, nil
}

func (s *certificateService) SearchCertificates(ctx context.Context, params dto.SearchCertificatesParams) ([]domain.Certificate, error) {
	if err := s.validateInput(ctx, params, "search"); err != nil {
		return nil, err
	}
	filter, err := params.ToDomainFilter()
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date range", err)
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		// An inverted range matches nothing; this is not an error.
		return []domain.Certificate{}, nil
	}

	certs, err := s.certificateRepo.SearchCertificates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to search certificates")
		return nil, err
	}
	if certs == nil {
		return []domain.Certificate{}, nil
	}
	s.LogDebug(ctx, "Certificate search finished", slog.Int("count", len(certs)))
	return certs, nil
}

func (s *certificateService) NextCertificateNumber(ctx context.Context, workOrderID int64) (int, error) {
	if _, err := s.workOrderRepo.FindWorkOrderByID(ctx, workOrderID); err != nil {
		return 0, err
	}
	return s.certificateRepo.NextCertificateNumber(ctx, workOrderID)
}

// UpdateCertificate overwrites the mutable fields and the invoice lines. Number, work order and
// generatedAt are kept. An empty file path keeps the one already recorded.
func (s *certificateService) UpdateCertificate(ctx context.Context, certificateID int64, req dto.UpdateCertificateRequest) (*domain.CertificateReport, error) {
	if err := s.validateInput(ctx, req, "certificate"); err != nil {
		return nil, err
	}
	date, err := parseCertificateDate(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.certificateRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return nil, err
	}

	lines := dto.ToDomainInvoiceLines(req.InvoiceLines)
	updated := *existing
	updated.Date = date
	updated.ContractNumber = req.ContractNumber
	updated.ContractorName = req.Contractor
	updated.ContractValue = req.ContractValue
	updated.PaidValue = req.PaidValue
	updated.InvoiceTotal = domain.SumInvoiceLines(lines)
	updated.Status = domain.CertificateStatus(req.Status)
	updated.StatusComment = req.StatusComment
	if req.FilePath != "" {
		updated.FilePath = req.FilePath
	}

	if err := s.certificateRepo.UpdateCertificate(ctx, updated, lines); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update certificate", slog.Int64("certificate_id", certificateID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Certificate updated", slog.Int64("certificate_id", certificateID), slog.Int("lines", len(lines)))

	return s.loadReport(ctx, certificateID)
}

func (s *certificateService) ReplaceInvoiceLines(ctx context.Context, certificateID int64, req dto.ReplaceInvoiceLinesRequest) (*domain.CertificateReport, error) {
	if err := s.validateInput(ctx, req, "invoice lines"); err != nil {
		return nil, err
	}
	lines := dto.ToDomainInvoiceLines(req.InvoiceLines)
	if err := s.certificateRepo.ReplaceInvoiceLines(ctx, certificateID, lines); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace invoice lines", slog.Int64("certificate_id", certificateID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Invoice lines replaced", slog.Int64("certificate_id", certificateID), slog.Int("lines", len(lines)))

	return s.loadReport(ctx, certificateID)
}

func (s *certificateService) UpdateStatus(ctx context.Context, certificateID int64, req dto.UpdateStatusRequest) error {
	if err := s.validateInput(ctx, req, "status"); err != nil {
		return err
	}
	status := domain.CertificateStatus(req.Status)
	if err := s.certificateRepo.UpdateCertificateStatus(ctx, certificateID, status, req.StatusComment); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update certificate status", slog.Int64("certificate_id", certificateID))
		}
		return err
	}
	s.LogInfo(ctx, "Certificate status changed", slog.Int64("certificate_id", certificateID), slog.String("status", req.Status))
	return nil
}

func (s *certificateService) AttachArtifact(ctx context.Context, certificateID int64, req dto.AttachArtifactRequest) error {
	if err := s.validateInput(ctx, req, "artifact"); err != nil {
		return err
	}
	if err := s.certificateRepo.UpdateCertificateFilePath(ctx, certificateID, req.FilePath); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record artifact path", slog.Int64("certificate_id", certificateID))
		}
		return err
	}
	return nil
}

func (s *certificateService) DeleteCertificate(ctx context.Context, certificateID int64) error {
	if err := s.certificateRepo.DeleteCertificate(ctx, certificateID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete certificate", slog.Int64("certificate_id", certificateID))
		}
		return err
	}
	s.LogInfo(ctx, "Certificate deleted", slog.Int64("certificate_id", certificateID))
	return nil
}
