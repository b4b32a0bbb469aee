package services_test

import (
	"context"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkOrderRepository ---
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindWorkOrderByID(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindWorkOrderID(ctx context.Context, name string, code int) (int64, error) {
	args := m.Called(ctx, name, code)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.WorkOrderRepositoryFacade = (*MockWorkOrderRepository)(nil)

// --- Mock CertificateRepository ---
type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) NextCertificateNumber(ctx context.Context, workOrderID int64) (int, error) {
	args := m.Called(ctx, workOrderID)
	return args.Int(0), args.Error(1)
}

func (m *MockCertificateRepository) FindCertificateByID(ctx context.Context, certificateID int64) (*domain.Certificate, error) {
	args := m.Called(ctx, certificateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListInvoiceLines(ctx context.Context, certificateID int64) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, certificateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockCertificateRepository) ListCertificatesByWorkOrder(ctx context.Context, workOrderID *int64) ([]domain.Certificate, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) SearchCertificates(ctx context.Context, filter domain.CertificateFilter) ([]domain.Certificate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) CreateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) (int64, error) {
	args := m.Called(ctx, certificate, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCertificateRepository) UpdateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) error {
	args := m.Called(ctx, certificate, lines)
	return args.Error(0)
}

func (m *MockCertificateRepository) ReplaceInvoiceLines(ctx context.Context, certificateID int64, lines []domain.InvoiceLine) error {
	args := m.Called(ctx, certificateID, lines)
	return args.Error(0)
}

func (m *MockCertificateRepository) UpdateCertificateStatus(ctx context.Context, certificateID int64, status domain.CertificateStatus, comment *string) error {
	args := m.Called(ctx, certificateID, status, comment)
	return args.Error(0)
}

func (m *MockCertificateRepository) UpdateCertificateFilePath(ctx context.Context, certificateID int64, filePath string) error {
	args := m.Called(ctx, certificateID, filePath)
	return args.Error(0)
}

func (m *MockCertificateRepository) DeleteCertificate(ctx context.Context, certificateID int64) error {
	args := m.Called(ctx, certificateID)
	return args.Error(0)
}

var _ portsrepo.CertificateRepositoryFacade = (*MockCertificateRepository)(nil)
