package models

// WorkOrder is a row of the work_orders table.
type WorkOrder struct {
	WorkOrderID       int64  `json:"workOrderID"`
	Name              string `json:"name"`
	Code              int    `json:"code"`
	ApprovalReference string `json:"approvalReference"`
}
