package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/certificate_registry/internal/core/domain"
)

const certificateSelect = `
	SELECT c.certificate_id, c.certificate_number, c.work_order_id, c.certificate_date,
	       c.contract_number, c.contractor_name, c.contract_value, c.paid_value, c.invoice_total,
	       c.file_path, c.generated_at, c.status, c.status_comment,
	       w.name, w.code, w.approval_reference
	FROM certificates c
	JOIN work_orders w ON w.work_order_id = c.work_order_id`

// Work order names are unique and numbers are unique per work order, so this order is total.
const certificateOrderBy = `ORDER BY w.name ASC, c.certificate_number DESC`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildCertificateSearchQuery assembles one parameterized query from the non-empty predicates of
// filter, combined with AND. An empty filter yields every certificate.
func buildCertificateSearchQuery(filter domain.CertificateFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}

	next := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.WorkOrderIDs) > 0 {
		conditions = append(conditions, "c.work_order_id = ANY("+next(filter.WorkOrderIDs)+")")
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "c.status = ANY("+next(statuses)+")")
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "c.certificate_date >= "+next(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "c.certificate_date <= "+next(*filter.DateTo))
	}
	if filter.Contractor != "" {
		op := "ILIKE"
		if filter.ContractorCaseSensitive {
			op = "LIKE"
		}
		conditions = append(conditions, "c.contractor_name "+op+" "+next(containsPattern(filter.Contractor)))
	}

	query := certificateSelect
	if len(conditions) > 0 {
		query += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t" + certificateOrderBy + ";"
	return query, args
}
