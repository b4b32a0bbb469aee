package domain

import "fmt"

// WorkObjectSuffix is appended to a work order code to form its work-object code.
const WorkObjectSuffix = "02"

// WorkOrder is a construction project against which certificates are issued.
// Work orders are seeded by migrations and never mutated by the application.
type WorkOrder struct {
	WorkOrderID       int64  `json:"workOrderID"`       // Primary Key
	Name              string `json:"name"`              // Unique
	Code              int    `json:"code"`              // Numeric work code, e.g. 677
	ApprovalReference string `json:"approvalReference"` // e.g. "A 37-024-19"
}

// WorkObjectCode returns the code concatenated with WorkObjectSuffix (677 -> "67702").
func (w WorkOrder) WorkObjectCode() string {
	return fmt.Sprintf("%d%s", w.Code, WorkObjectSuffix)
}

// DisplayName is the label printed on the certificate header.
func (w WorkOrder) DisplayName() string {
	return fmt.Sprintf("Obra %d  %s", w.Code, w.Name)
}
