package domain_test

import (
	"testing"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCertificateStatus_IsValid(t *testing.T) {
	tests := []struct {
		status domain.CertificateStatus
		want   bool
	}{
		{domain.StatusActive, true},
		{domain.StatusReverted, true},
		{domain.StatusCancelled, true},
		{"Cancelled", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestSumInvoiceLines(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Amount: decimal.RequireFromString("1000.50")},
		{Amount: decimal.RequireFromString("250.25")},
		{Amount: decimal.RequireFromString("0.25")},
	}
	assert.True(t, decimal.RequireFromString("1251.00").Equal(domain.SumInvoiceLines(lines)))
	assert.True(t, decimal.Zero.Equal(domain.SumInvoiceLines(nil)))
}

func TestSumInvoiceLines_MatchesStoredAmounts(t *testing.T) {
	lines := []domain.InvoiceLine{
		{Amount: decimal.RequireFromString("1.005")},
		{Amount: decimal.RequireFromString("1.005")},
	}
	// each line is stored as 1.01, so the total has to be 2.02 rather than round(2.010)
	assert.Equal(t, "2.02", domain.SumInvoiceLines(lines).StringFixed(2))
	assert.Equal(t, "1.01", domain.RoundMoney(decimal.RequireFromString("1.005")).StringFixed(2))
	assert.True(t, domain.RoundMoney(decimal.RequireFromString("0.004")).IsZero())
}

func TestWorkOrder_Codes(t *testing.T) {
	wo := domain.WorkOrder{Name: "Marina Cayo Saetía", Code: 677, ApprovalReference: "A 37-024-19"}
	assert.Equal(t, "67702", wo.WorkObjectCode())
	assert.Equal(t, "Obra 677  Marina Cayo Saetía", wo.DisplayName())
}

func TestNewCertificateReport(t *testing.T) {
	cert := domain.Certificate{
		CertificateID:     7,
		CertificateNumber: 3,
		WorkOrderID:       5,
		WorkOrderName:     "Canal Dumois",
		WorkOrderCode:     872,
		ApprovalReference: "A 37-038-21",
	}

	report := domain.NewCertificateReport(cert, nil)

	assert.Equal(t, int64(5), report.WorkOrder.WorkOrderID)
	assert.Equal(t, "Canal Dumois", report.WorkOrder.Name)
	assert.Equal(t, "87202", report.WorkObjectCode)
	assert.NotNil(t, report.InvoiceLines)
	assert.Empty(t, report.InvoiceLines)
}
