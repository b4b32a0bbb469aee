package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	"github.com/SscSPs/certificate_registry/internal/models"
	"github.com/SscSPs/certificate_registry/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWorkOrderRepository reads the work order registry.
type PgxWorkOrderRepository struct {
	BaseRepository
}

func newPgxWorkOrderRepository(pool *pgxpool.Pool) portsrepo.WorkOrderRepositoryFacade {
	return &PgxWorkOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkOrderRepositoryFacade = (*PgxWorkOrderRepository)(nil)

// ListWorkOrders returns every work order ordered by name.
func (r *PgxWorkOrderRepository) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	query := `
		SELECT work_order_id, name, code, approval_reference
		FROM work_orders
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError("failed to query work orders", err)
	}
	defer rows.Close()

	workOrders := []domain.WorkOrder{}
	for rows.Next() {
		var m models.WorkOrder
		if err := rows.Scan(&m.WorkOrderID, &m.Name, &m.Code, &m.ApprovalReference); err != nil {
			return nil, storeError("failed to scan work order row", err)
		}
		workOrders = append(workOrders, mapping.ToDomainWorkOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating work order rows", err)
	}
	return workOrders, nil
}

// FindWorkOrderByID retrieves a work order by its ID.
func (r *PgxWorkOrderRepository) FindWorkOrderByID(ctx context.Context, workOrderID int64) (*domain.WorkOrder, error) {
	query := `
		SELECT work_order_id, name, code, approval_reference
		FROM work_orders
		WHERE work_order_id = $1;
	`
	var m models.WorkOrder
	err := r.Pool.QueryRow(ctx, query, workOrderID).Scan(&m.WorkOrderID, &m.Name, &m.Code, &m.ApprovalReference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("work order " + strconv.FormatInt(workOrderID, 10) + " not found")
		}
		return nil, storeError("failed to find work order "+strconv.FormatInt(workOrderID, 10), err)
	}
	wo := mapping.ToDomainWorkOrder(m)
	return &wo, nil
}

// FindWorkOrderID resolves a work order by exact name and code.
func (r *PgxWorkOrderRepository) FindWorkOrderID(ctx context.Context, name string, code int) (int64, error) {
	query := `
		SELECT work_order_id
		FROM work_orders
		WHERE name = $1 AND code = $2;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, name, code).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("work order " + name + " (" + strconv.Itoa(code) + ") not found")
		}
		return 0, storeError("failed to resolve work order "+name, err)
	}
	return id, nil
}
