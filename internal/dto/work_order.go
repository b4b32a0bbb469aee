package dto

import "github.com/SscSPs/certificate_registry/internal/core/domain"

// WorkOrderResponse is a work order with its derived display fields.
type WorkOrderResponse struct {
	WorkOrderID       int64  `json:"workOrderID"`
	Name              string `json:"name"`
	Code              int    `json:"code"`
	ApprovalReference string `json:"approvalReference"`
	WorkObjectCode    string `json:"workObjectCode"`
	DisplayName       string `json:"displayName"`
}

// FindWorkOrderParams are the query parameters of a work order lookup.
type FindWorkOrderParams struct {
	Name string `form:"name" binding:"required"`
	Code int    `form:"code" binding:"required,gt=0"`
}

// NextNumberResponse previews the next certificate number of a work order.
type NextNumberResponse struct {
	WorkOrderID       int64 `json:"workOrderID"`
	CertificateNumber int   `json:"certificateNumber"`
}

// ToWorkOrderResponse converts a domain.WorkOrder to a WorkOrderResponse.
func ToWorkOrderResponse(w domain.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		WorkOrderID:       w.WorkOrderID,
		Name:              w.Name,
		Code:              w.Code,
		ApprovalReference: w.ApprovalReference,
		WorkObjectCode:    w.WorkObjectCode(),
		DisplayName:       w.DisplayName(),
	}
}

// ToWorkOrderResponses converts a slice of work orders.
func ToWorkOrderResponses(ws []domain.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, len(ws))
	for i, w := range ws {
		out[i] = ToWorkOrderResponse(w)
	}
	return out
}
