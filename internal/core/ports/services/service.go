package services

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Currency   CurrencySvcFacade
	Extraction ExtractionSvcFacade
	Totals     TotalsSvcFacade
}
