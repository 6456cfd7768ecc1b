package services

import (
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	renderer portssvc.InvoiceRenderer,
	metrics portssvc.InvoiceMetricsRecorder,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.Client = NewClientService(repos.ClientRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Health = NewHealthService(repos.Health)

	// The invoice engine resolves terms through the same rules the API exposes.
	container.PaymentTerm = NewPaymentTermService(repos.PaymentTermRepo)

	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		repos.ClientRepo,
		repos.UserRepo,
		container.PaymentTerm,
		WithInvoiceRenderer(renderer),
		WithInvoiceMetrics(metrics),
		WithDefaultVATRate(cfg.DefaultVATRate),
		WithCurrencySymbol(cfg.CurrencySymbol),
	)

	return container
}
