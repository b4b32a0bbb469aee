package mapping

import (
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/SscSPs/certificate_registry/internal/models"
)

// ToDomainWorkOrder converts a model WorkOrder to a domain WorkOrder
func ToDomainWorkOrder(m models.WorkOrder) domain.WorkOrder {
	return domain.WorkOrder{
		WorkOrderID:       m.WorkOrderID,
		Name:              m.Name,
		Code:              m.Code,
		ApprovalReference: m.ApprovalReference,
	}
}
