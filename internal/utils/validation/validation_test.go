package validation_test

import (
	"testing"

	"github.com/SscSPs/certificate_registry/internal/dto"
	"github.com/SscSPs/certificate_registry/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() dto.CreateCertificateRequest {
	return dto.CreateCertificateRequest{
		Date:          "2026-10-18",
		WorkOrderID:   2,
		ContractValue: decimal.NewFromInt(1000),
		PaidValue:     decimal.Zero,
		InvoiceLines: []dto.InvoiceLineRequest{
			{Supplier: "Acme", InvoiceNumber: "F-1", Amount: decimal.RequireFromString("10.50")},
		},
	}
}

func TestValidator_CreateCertificateRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateCertificateRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *dto.CreateCertificateRequest) {}},
		{name: "empty contract fields allowed", mutate: func(r *dto.CreateCertificateRequest) {
			r.ContractNumber = ""
			r.Contractor = ""
		}},
		{name: "missing date", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) { r.Date = "" }},
		{name: "bad date", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) { r.Date = "18/10/2026" }},
		{name: "missing work order", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) { r.WorkOrderID = 0 }},
		{name: "negative contract value", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.ContractValue = decimal.NewFromInt(-1)
		}},
		{name: "no invoice lines", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) { r.InvoiceLines = nil }},
		{name: "zero amount", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Amount = decimal.Zero
		}},
		{name: "two decimal amount", mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Amount = decimal.RequireFromString("0.01")
		}},
		{name: "trailing zeros beyond cents", mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Amount = decimal.RequireFromString("10.500")
		}},
		{name: "sub-cent amount", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Amount = decimal.RequireFromString("0.004")
		}},
		{name: "three decimal amount", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Amount = decimal.RequireFromString("1.005")
		}},
		{name: "three decimal contract value", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.ContractValue = decimal.RequireFromString("999.999")
		}},
		{name: "three decimal paid value", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.PaidValue = decimal.RequireFromString("0.001")
		}},
		{name: "missing supplier", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].Supplier = ""
		}},
		{name: "missing invoice number", wantErr: true, mutate: func(r *dto.CreateCertificateRequest) {
			r.InvoiceLines[0].InvoiceNumber = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_StatusOneOf(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(dto.UpdateStatusRequest{Status: "CANCELLED"}))
	assert.Error(t, v.Struct(dto.UpdateStatusRequest{Status: "Cancelled"}))
	assert.Error(t, v.Struct(dto.UpdateStatusRequest{}))
}

func TestValidator_MoneyOnPointer(t *testing.T) {
	v := validation.New()

	ok := validCreateRequest()
	assert.NoError(t, v.Struct(&ok))

	bad := validCreateRequest()
	bad.InvoiceLines[0].Amount = decimal.RequireFromString("1.005")
	assert.Error(t, v.Struct(&bad))
}

func TestValidator_SearchStatuses(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(dto.SearchCertificatesParams{Statuses: []string{"ACTIVE", "REVERTED"}}))
	assert.NoError(t, v.Struct(dto.SearchCertificatesParams{}))
	assert.Error(t, v.Struct(dto.SearchCertificatesParams{Statuses: []string{"ACTIVE", "archived"}}))
}
