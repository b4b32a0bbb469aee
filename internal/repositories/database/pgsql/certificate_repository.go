package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/certificate_registry/internal/apperrors"
	"github.com/SscSPs/certificate_registry/internal/core/domain"
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	"github.com/SscSPs/certificate_registry/internal/models"
	"github.com/SscSPs/certificate_registry/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCertificateRepository persists certificates and their invoice lines.
type PgxCertificateRepository struct {
	BaseRepository
}

func newPgxCertificateRepository(pool *pgxpool.Pool) portsrepo.CertificateRepositoryWithTx {
	return &PgxCertificateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCertificateRepository implements portsrepo.CertificateRepositoryWithTx
var _ portsrepo.CertificateRepositoryWithTx = (*PgxCertificateRepository)(nil)

func idStr(id int64) string { return strconv.FormatInt(id, 10) }

// NextCertificateNumber returns max(certificate_number)+1 for the work order, or 1 if it has none.
func (r *PgxCertificateRepository) NextCertificateNumber(ctx context.Context, workOrderID int64) (int, error) {
	query := `
		SELECT COALESCE(MAX(certificate_number), 0) + 1
		FROM certificates
		WHERE work_order_id = $1;
	`
	var next int
	if err := r.Pool.QueryRow(ctx, query, workOrderID).Scan(&next); err != nil {
		return 0, storeError("failed to compute next certificate number for work order "+idStr(workOrderID), err)
	}
	return next, nil
}

// CreateCertificate inserts the certificate and its invoice lines in one transaction.
// The status is always ACTIVE with no comment and the invoice total is the sum of lines.
func (r *PgxCertificateRepository) CreateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) (int64, error) {
	m := mapping.ToModelCertificate(certificate)
	m.InvoiceTotal = domain.SumInvoiceLines(lines)
	if m.GeneratedAt.IsZero() {
		m.GeneratedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO certificates (
			certificate_number, work_order_id, certificate_date, contract_number, contractor_name,
			contract_value, paid_value, invoice_total, file_path, generated_at, status, status_comment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'ACTIVE', NULL)
		RETURNING certificate_id;
	`

	var certificateID int64
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			m.CertificateNumber,
			m.WorkOrderID,
			m.CertificateDate,
			m.ContractNumber,
			m.ContractorName,
			m.ContractValue,
			m.PaidValue,
			m.InvoiceTotal,
			m.FilePath,
			m.GeneratedAt,
		).Scan(&certificateID)
		if err != nil {
			return insertCertificateError(m.WorkOrderID, m.CertificateNumber, err)
		}
		return r.insertInvoiceLines(ctx, tx, certificateID, lines)
	})
	if err != nil {
		return 0, err
	}
	return certificateID, nil
}

// insertInvoiceLines batch-inserts lines, numbering them in slice order.
func (r *PgxCertificateRepository) insertInvoiceLines(ctx context.Context, tx pgx.Tx, certificateID int64, lines []domain.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
		INSERT INTO invoice_lines (certificate_id, line_no, supplier, invoice_number, amount, code)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, l := range mapping.ToModelInvoiceLines(certificateID, lines) {
		batch.Queue(query, l.CertificateID, l.Position, l.Supplier, l.InvoiceNumber, l.Amount, l.Code)
	}
	// Close reports the first failing statement of the batch
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return storeError("failed to insert invoice lines for certificate "+idStr(certificateID), err)
	}
	return nil
}

func (r *PgxCertificateRepository) deleteInvoiceLines(ctx context.Context, tx pgx.Tx, certificateID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE certificate_id = $1;`, certificateID); err != nil {
		return storeError("failed to delete invoice lines for certificate "+idStr(certificateID), err)
	}
	return nil
}

// FindCertificateByID retrieves a certificate joined with its work order.
func (r *PgxCertificateRepository) FindCertificateByID(ctx context.Context, certificateID int64) (*domain.Certificate, error) {
	query := certificateSelect + `
	WHERE c.certificate_id = $1;`

	m, err := scanCertificate(r.Pool.QueryRow(ctx, query, certificateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("certificate " + idStr(certificateID) + " not found")
		}
		return nil, storeError("failed to find certificate by ID "+idStr(certificateID), err)
	}
	d := mapping.ToDomainCertificate(m)
	return &d, nil
}

// ListInvoiceLines retrieves the lines of a certificate in insertion order.
// A missing certificate yields an empty slice.
func (r *PgxCertificateRepository) ListInvoiceLines(ctx context.Context, certificateID int64) ([]domain.InvoiceLine, error) {
	query := `
		SELECT invoice_line_id, certificate_id, line_no, supplier, invoice_number, amount, code
		FROM invoice_lines
		WHERE certificate_id = $1
		ORDER BY line_no, invoice_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, certificateID)
	if err != nil {
		return nil, storeError("failed to query invoice lines for certificate "+idStr(certificateID), err)
	}
	defer rows.Close()

	lines := []models.InvoiceLine{}
	for rows.Next() {
		var l models.InvoiceLine
		if err := rows.Scan(&l.InvoiceLineID, &l.CertificateID, &l.Position, &l.Supplier, &l.InvoiceNumber, &l.Amount, &l.Code); err != nil {
			return nil, storeError("failed to scan invoice line row for certificate "+idStr(certificateID), err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating invoice line rows for certificate "+idStr(certificateID), err)
	}
	return mapping.ToDomainInvoiceLineSlice(lines), nil
}

// ListCertificatesByWorkOrder lists the certificates of one work order, or all when workOrderID is nil.
func (r *PgxCertificateRepository) ListCertificatesByWorkOrder(ctx context.Context, workOrderID *int64) ([]domain.Certificate, error) {
	filter := domain.CertificateFilter{}
	if workOrderID != nil {
		filter.WorkOrderIDs = []int64{*workOrderID}
	}
	return r.SearchCertificates(ctx, filter)
}

// SearchCertificates runs the filter as a single query. No match yields an empty slice.
func (r *PgxCertificateRepository) SearchCertificates(ctx context.Context, filter domain.CertificateFilter) ([]domain.Certificate, error) {
	query, args := buildCertificateSearchQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError("failed to search certificates", err)
	}
	defer rows.Close()

	certificates := []models.Certificate{}
	for rows.Next() {
		m, err := scanCertificate(rows)
		if err != nil {
			return nil, storeError("failed to scan certificate row", err)
		}
		certificates = append(certificates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating certificate rows", err)
	}
	return mapping.ToDomainCertificateSlice(certificates), nil
}

// UpdateCertificate overwrites the mutable fields and replaces the invoice lines in one transaction.
func (r *PgxCertificateRepository) UpdateCertificate(ctx context.Context, certificate domain.Certificate, lines []domain.InvoiceLine) error {
	m := mapping.ToModelCertificate(certificate)
	m.InvoiceTotal = domain.SumInvoiceLines(lines)

	query := `
		UPDATE certificates
		SET certificate_date = $2,
		    contract_number = $3,
		    contractor_name = $4,
		    contract_value = $5,
		    paid_value = $6,
		    invoice_total = $7,
		    file_path = $8,
		    status = $9,
		    status_comment = $10
		WHERE certificate_id = $1;
	`
	// certificate_number, work_order_id and generated_at are deliberately absent.

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query,
			m.CertificateID,
			m.CertificateDate,
			m.ContractNumber,
			m.ContractorName,
			m.ContractValue,
			m.PaidValue,
			m.InvoiceTotal,
			m.FilePath,
			m.Status,
			m.StatusComment,
		)
		if err != nil {
			return storeError("failed to update certificate "+idStr(m.CertificateID), err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("certificate " + idStr(m.CertificateID) + " not found for update")
		}
		if err := r.deleteInvoiceLines(ctx, tx, m.CertificateID); err != nil {
			return err
		}
		return r.insertInvoiceLines(ctx, tx, m.CertificateID, lines)
	})
}

// ReplaceInvoiceLines swaps the whole line set of a certificate and refreshes its invoice total.
// Either the old or the new set survives, never a mix.
func (r *PgxCertificateRepository) ReplaceInvoiceLines(ctx context.Context, certificateID int64, lines []domain.InvoiceLine) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `UPDATE certificates SET invoice_total = $2 WHERE certificate_id = $1;`,
			certificateID, domain.SumInvoiceLines(lines))
		if err != nil {
			return storeError("failed to update invoice total of certificate "+idStr(certificateID), err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("certificate " + idStr(certificateID) + " not found")
		}
		if err := r.deleteInvoiceLines(ctx, tx, certificateID); err != nil {
			return err
		}
		return r.insertInvoiceLines(ctx, tx, certificateID, lines)
	})
}

// UpdateCertificateStatus updates the status and its comment.
func (r *PgxCertificateRepository) UpdateCertificateStatus(ctx context.Context, certificateID int64, status domain.CertificateStatus, comment *string) error {
	query := `
		UPDATE certificates
		SET status = $2,
		    status_comment = $3
		WHERE certificate_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, certificateID, models.CertificateStatus(status), comment)
	if err != nil {
		return storeError("failed to update status of certificate "+idStr(certificateID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("certificate " + idStr(certificateID) + " not found for update")
	}
	return nil
}

// UpdateCertificateFilePath records the rendered artifact location.
func (r *PgxCertificateRepository) UpdateCertificateFilePath(ctx context.Context, certificateID int64, filePath string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE certificates SET file_path = $2 WHERE certificate_id = $1;`, certificateID, filePath)
	if err != nil {
		return storeError("failed to update file path of certificate "+idStr(certificateID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("certificate " + idStr(certificateID) + " not found for update")
	}
	return nil
}

// DeleteCertificate deletes the invoice lines and then the certificate in one transaction.
func (r *PgxCertificateRepository) DeleteCertificate(ctx context.Context, certificateID int64) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := r.deleteInvoiceLines(ctx, tx, certificateID); err != nil {
			return err
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM certificates WHERE certificate_id = $1;`, certificateID)
		if err != nil {
			return storeError("failed to delete certificate "+idStr(certificateID), err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("certificate " + idStr(certificateID) + " not found")
		}
		return nil
	})
}

// scanCertificate scans one row produced by certificateSelect.
func scanCertificate(row pgx.Row) (models.Certificate, error) {
	var m models.Certificate
	err := row.Scan(
		&m.CertificateID,
		&m.CertificateNumber,
		&m.WorkOrderID,
		&m.CertificateDate,
		&m.ContractNumber,
		&m.ContractorName,
		&m.ContractValue,
		&m.PaidValue,
		&m.InvoiceTotal,
		&m.FilePath,
		&m.GeneratedAt,
		&m.Status,
		&m.StatusComment,
		&m.WorkOrderName,
		&m.WorkOrderCode,
		&m.ApprovalReference,
	)
	return m, err
}
