package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientsByIDs(ctx context.Context, ownerUserID string, clientIDs []string) (map[string]domain.Client, error) {
	args := m.Called(ctx, ownerUserID, clientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string, ownerUserID string) error {
	args := m.Called(ctx, clientID, ownerUserID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByOwner(ctx context.Context, ownerUserID string) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, ownerUserID string) error {
	args := m.Called(ctx, expenseID, ownerUserID)
	return args.Error(0)
}

// --- Mock PaymentTermRepository ---
type MockPaymentTermRepository struct {
	mock.Mock
}

func (m *MockPaymentTermRepository) FindPaymentTermByID(ctx context.Context, paymentTermID string) (*domain.PaymentTerm, error) {
	args := m.Called(ctx, paymentTermID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTerm), args.Error(1)
}

func (m *MockPaymentTermRepository) ListVisiblePaymentTerms(ctx context.Context, userID string) ([]domain.PaymentTerm, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentTerm), args.Error(1)
}

func (m *MockPaymentTermRepository) SavePaymentTerm(ctx context.Context, term domain.PaymentTerm) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockPaymentTermRepository) DeleteOwnedPaymentTerm(ctx context.Context, paymentTermID string, ownerUserID string) error {
	args := m.Called(ctx, paymentTermID, ownerUserID)
	return args.Error(0)
}

func (m *MockPaymentTermRepository) SeedSystemPaymentTerms(ctx context.Context, terms []domain.PaymentTerm) (int, error) {
	args := m.Called(ctx, terms)
	return args.Int(0), args.Error(1)
}

// --- Mock InvoiceRepository ---
// Begin hands out a nil transaction; the mock never inspects it.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerUserID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, ownerUserID string) error {
	args := m.Called(ctx, invoiceID, ownerUserID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ReserveInvoiceSequence(ctx context.Context, tx pgx.Tx, ownerUserID string, year int) (int, error) {
	args := m.Called(ctx, tx, ownerUserID, year)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock InvoiceRenderer ---
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) RenderInvoice(doc domain.InvoiceDocument) ([]byte, error) {
	args := m.Called(doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock InvoiceMetricsRecorder ---
type MockInvoiceMetrics struct {
	mock.Mock
}

func (m *MockInvoiceMetrics) InvoiceCreated(status domain.InvoiceStatus) {
	m.Called(status)
}

func (m *MockInvoiceMetrics) InvoiceNumberConflict() {
	m.Called()
}

func (m *MockInvoiceMetrics) InvoicePDFRendered(duration time.Duration, err error) {
	m.Called(duration, err)
}

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
