package pgsql

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestInsertCertificateError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: certificateNumberConstraint}
	fk := &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: certificateWorkOrderFK}
	otherUnique := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "some_other_key"}
	netErr := errors.New("connection reset by peer")

	t.Run("duplicate number", func(t *testing.T) {
		err := insertCertificateError(3, 7, dup)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateCertificateNumber)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.ErrorIs(t, err, dup)
		assert.Contains(t, err.Error(), "certificate number 7 already exists for work order 3")
	})

	t.Run("unknown work order", func(t *testing.T) {
		err := insertCertificateError(99, 1, fk)
		assert.ErrorIs(t, err, apperrors.ErrWorkOrderNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("other constraint is not a numbering conflict", func(t *testing.T) {
		err := insertCertificateError(3, 7, otherUnique)
		assert.NotErrorIs(t, err, apperrors.ErrDuplicateCertificateNumber)
		assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, apperrors.ErrDuplicate)

		var appErr *apperrors.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, http.StatusInternalServerError, appErr.Code)
			assert.Nil(t, appErr.Kind)
		}
	})

	t.Run("connection failure", func(t *testing.T) {
		err := insertCertificateError(3, 7, netErr)
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, err, netErr)
	})
}
