package repositories

import (
	"context"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
)

// WorkOrderReader defines read operations for the seeded work orders.
// Work orders are never written by the application.
type WorkOrderReader interface {
	// ListWorkOrders returns all work orders ordered by name ascending.
	ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error)

	// FindWorkOrderByID retrieves a work order by its identifier.
	FindWorkOrderByID(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error)

	// FindWorkOrderID resolves a (name, code) selection to its identifier.
	// Both name and code must match exactly.
	FindWorkOrderID(ctx context.Context, name string, code int) (int64, error)
}

// WorkOrderRepositoryFacade is the facade used by services.
type WorkOrderRepositoryFacade interface {
	WorkOrderReader
}
