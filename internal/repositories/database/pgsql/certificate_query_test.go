package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildCertificateSearchQuery_NoPredicates(t *testing.T) {
	query, args := buildCertificateSearchQuery(domain.CertificateFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY w.name ASC, c.certificate_number DESC")
	assert.Empty(t, args)
}

func TestBuildCertificateSearchQuery_EmptySetsAreOmitted(t *testing.T) {
	query, args := buildCertificateSearchQuery(domain.CertificateFilter{
		WorkOrderIDs: []int64{},
		Statuses:     []domain.CertificateStatus{},
		Contractor:   "",
	})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildCertificateSearchQuery_AllPredicates(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildCertificateSearchQuery(domain.CertificateFilter{
		WorkOrderIDs: []int64{1, 5},
		Statuses:     []domain.CertificateStatus{domain.StatusCancelled},
		DateFrom:     &from,
		DateTo:       &to,
		Contractor:   "Acme",
	})

	where := query[strings.Index(query, "WHERE"):]
	assert.Contains(t, where, "c.work_order_id = ANY($1)")
	assert.Contains(t, where, "c.status = ANY($2)")
	assert.Contains(t, where, "c.certificate_date >= $3")
	assert.Contains(t, where, "c.certificate_date <= $4")
	assert.Contains(t, where, "c.contractor_name ILIKE $5")
	assert.Equal(t, 4, strings.Count(where, " AND "))

	assert.Equal(t, []interface{}{
		[]int64{1, 5},
		[]string{"CANCELLED"},
		from,
		to,
		"%Acme%",
	}, args)
}

func TestBuildCertificateSearchQuery_ContractorCasePolicy(t *testing.T) {
	insensitive, _ := buildCertificateSearchQuery(domain.CertificateFilter{Contractor: "acme"})
	sensitive, _ := buildCertificateSearchQuery(domain.CertificateFilter{Contractor: "acme", ContractorCaseSensitive: true})

	assert.Contains(t, insensitive, "c.contractor_name ILIKE $1")
	assert.Contains(t, sensitive, "c.contractor_name LIKE $1")
	assert.NotContains(t, sensitive, "ILIKE")
}

func TestBuildCertificateSearchQuery_OnlyDateTo(t *testing.T) {
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	query, args := buildCertificateSearchQuery(domain.CertificateFilter{DateTo: &to})

	assert.Contains(t, query, "WHERE c.certificate_date <= $1")
	assert.Equal(t, []interface{}{to}, args)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%Acme%`, containsPattern("Acme"))
	assert.Equal(t, `%100\% S\_A%`, containsPattern("100% S_A"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
