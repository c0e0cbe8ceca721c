package services

import (
	portsrepo "github.com/expensio/invoice_ocr_api/internal/core/ports/repositories"
	portssvc "github.com/expensio/invoice_ocr_api/internal/core/ports/services"
	"github.com/expensio/invoice_ocr_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Extraction = NewExtractionService(cfg.CompanyCurrency, cfg.DefaultLanguages)
	container.Totals = NewTotalsService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.ExtractionSvcFacade = (*ExtractionService)(nil)
	_ portssvc.TotalsSvcFacade     = (*TotalsService)(nil)
)
