package services

import (
	"context"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
)

// WorkOrderReaderSvc defines read operations on the work order registry
type WorkOrderReaderSvc interface {
	// ListWorkOrders returns all work orders ordered by name.
	ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error)

	// GetWorkOrder retrieves a work order by ID.
	GetWorkOrder(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error)

	// FindWorkOrderID resolves a selection made by name and code.
	FindWorkOrderID(ctx context.Context, name string, code int) (int64, error)
}

// WorkOrderSvcFacade combines all work-order service interfaces
type WorkOrderSvcFacade interface {
	WorkOrderReaderSvc
}
