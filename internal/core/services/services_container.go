package services

import (
	portsrepo "github.com/SscSPs/certificate_registry/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/certificate_registry/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		WorkOrder:   NewWorkOrderService(repos.WorkOrderRepo),
		Certificate: NewCertificateService(repos.CertificateRepo, repos.WorkOrderRepo),
	}
}
