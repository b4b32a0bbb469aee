package pgsql

import (
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository on the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkOrderRepo:   newPgxWorkOrderRepository(dbPool),
		CertificateRepo: newPgxCertificateRepository(dbPool),
	}
}
