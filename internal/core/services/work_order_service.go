package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
)

type workOrderService struct {
	BaseService
	workOrderRepo portsrepo.WorkOrderRepositoryFacade
}

// NewWorkOrderService creates a new work order registry service.
func NewWorkOrderService(workOrderRepo portsrepo.WorkOrderRepositoryFacade) portssvc.WorkOrderSvcFacade {
	return &workOrderService{workOrderRepo: workOrderRepo}
}

var _ portssvc.WorkOrderSvcFacade = (*workOrderService)(nil)

func (s *workOrderService) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	workOrders, err := s.workOrderRepo.ListWorkOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work orders")
		return nil, err
	}
	if workOrders == nil {
		return []domain.WorkOrder{}, nil
	}
	return workOrders, nil
}

func (s *workOrderService) GetWorkOrder(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error) {
	workOrder, err := s.workOrderRepo.FindWorkOrderByID(ctx, workOrderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get work order", slog.Int64("work_order_id", workOrderID))
		}
		return nil, err
	}
	return workOrder, nil
}

func (s *workOrderService) FindWorkOrderID(ctx context.Context, name string, code int) (int64, error) {
	if name == "" || code <= 0 {
		return 0, apperrors.NewValidationError("work order name and a positive code are required", nil)
	}
	id, err := s.workOrderRepo.FindWorkOrderID(ctx, name, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve work order", slog.String("name", name), slog.Int("code", code))
		}
		return 0, err
	}
	return id, nil
}
