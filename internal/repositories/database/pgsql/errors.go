package pgsql

import (
	"errors"
	"net/http"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint names declared by the migrations.
const (
	certificateNumberConstraint = "certificates_work_order_number_key"
	certificateWorkOrderFK      = "certificates_work_order_id_fkey"
)

func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isConstraintViolation(err error, code, constraint string) bool {
	pgErr, ok := pgErrorCode(err)
	return ok && pgErr.Code == code && pgErr.ConstraintName == constraint
}

// storeError classifies a driver error. Errors reported by the server are internal failures;
// anything else (dial, broken connection, cancelled context) means the store is unavailable.
func storeError(message string, err error) error {
	if _, ok := pgErrorCode(err); ok {
		return apperrors.NewAppError(http.StatusInternalServerError, message, err)
	}
	return apperrors.NewStoreError(message, err)
}

// insertCertificateError maps the constraint violations of a certificate insert.
func insertCertificateError(workOrderID int64, number int, err error) error {
	switch {
	case isConstraintViolation(err, uniqueViolation, certificateNumberConstraint):
		return apperrors.NewDuplicateCertificateNumberError(workOrderID, number, err)
	case isConstraintViolation(err, foreignKeyViolation, certificateWorkOrderFK):
		return apperrors.NewWorkOrderNotFoundError(workOrderID, err)
	default:
		return storeError("failed to insert certificate", err)
	}
}
