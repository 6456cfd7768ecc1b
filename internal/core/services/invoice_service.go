package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	invoiceTracerName = "freelance_books/invoices"
	pdfContentType    = "application/pdf"
)

// invoiceService is the invoice computation engine. It validates ownership,
// resolves payment terms, derives amounts and due dates and numbers invoices.
type invoiceService struct {
	BaseService
	invoiceRepo    portsrepo.InvoiceRepositoryWithTx
	clientRepo     portsrepo.ClientReader
	userRepo       portsrepo.UserReader
	terms          portssvc.PaymentTermResolverSvc
	sequencer      portssvc.InvoiceNumberSequencer
	renderer       portssvc.InvoiceRenderer
	metrics        portssvc.InvoiceMetricsRecorder
	defaultVATRate decimal.Decimal
	currencySymbol string
	tracer         trace.Tracer
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceRenderer sets the PDF renderer.
func WithInvoiceRenderer(renderer portssvc.InvoiceRenderer) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.renderer = renderer
	}
}

// WithInvoiceMetrics sets the metrics sink.
func WithInvoiceMetrics(metrics portssvc.InvoiceMetricsRecorder) InvoiceServiceOption {
	return func(s *invoiceService) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithDefaultVATRate sets the rate used when a request omits vatRate.
func WithDefaultVATRate(rate decimal.Decimal) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.defaultVATRate = rate
	}
}

// WithCurrencySymbol sets the symbol printed after amounts on documents.
func WithCurrencySymbol(symbol string) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.currencySymbol = symbol
	}
}

// NewInvoiceService creates the invoice service with the provided options
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	clientRepo portsrepo.ClientReader,
	userRepo portsrepo.UserReader,
	terms portssvc.PaymentTermResolverSvc,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		BaseService:    newBaseService(),
		invoiceRepo:    invoiceRepo,
		clientRepo:     clientRepo,
		userRepo:       userRepo,
		terms:          terms,
		sequencer:      NewInvoiceNumberSequencer(invoiceRepo),
		metrics:        noopInvoiceMetrics{},
		defaultVATRate: domain.DefaultVATRate,
		currencySymbol: "€",
		tracer:         otel.Tracer(invoiceTracerName),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.InvoiceWithClient, error) {
	ctx, span := s.tracer.Start(ctx, "InvoiceService.CreateInvoice")
	defer span.End()

	issueDate, err := domain.ParseCalendarDate(req.IssueDate)
	if err != nil {
		return nil, err
	}
	if req.Subtotal == nil {
		return nil, apperrors.NewValidationError("subtotal is required")
	}

	client, err := s.findOwnedClient(ctx, req.ClientID, userID)
	if err != nil {
		return nil, err
	}
	term, err := s.terms.ResolvePaymentTerm(ctx, req.PaymentTermID, userID)
	if err != nil {
		return nil, err
	}

	vatRate := s.defaultVATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}
	var status domain.InvoiceStatus
	if req.Status != nil {
		status = domain.InvoiceStatus(*req.Status)
	}

	invoice, err := domain.NewInvoice(domain.NewInvoiceParams{
		InvoiceID:   uuid.NewString(),
		OwnerUserID: userID,
		ClientID:    client.ClientID,
		IssueDate:   issueDate,
		Subtotal:    *req.Subtotal,
		VATRate:     vatRate,
		Status:      status,
		CreatedAt:   s.Now(),
	}, *term)
	if err != nil {
		return nil, err
	}

	if err := s.persistNumbered(ctx, &invoice); err != nil {
		span.SetStatus(codes.Error, "persist invoice")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("invoice.id", invoice.InvoiceID),
		attribute.String("invoice.number", invoice.InvoiceNumber),
	)
	s.metrics.InvoiceCreated(invoice.Status)
	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))

	return &domain.InvoiceWithClient{Invoice: invoice, Client: client}, nil
}

// persistNumbered reserves the next number and inserts the invoice in one transaction.
func (s *invoiceService) persistNumbered(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin invoice transaction")
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := s.invoiceRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back invoice transaction")
			}
		}
	}()

	number, err := s.sequencer.NextInvoiceNumber(ctx, tx, invoice.OwnerUserID, invoice.IssueDate)
	if err != nil {
		return err
	}
	invoice.InvoiceNumber = number

	if err := s.invoiceRepo.SaveInvoiceInTx(ctx, tx, *invoice); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvoiceNumberTaken):
			s.metrics.InvoiceNumberConflict()
			s.LogInfo(ctx, "Invoice number already taken", slog.String("invoice_number", number))
			return apperrors.NewAppError(http.StatusConflict, "invoice number "+number+" is already taken, retry the request", err)
		case errors.Is(err, apperrors.ErrConflict):
			// the client row went away after the ownership check
			s.LogInfo(ctx, "Invoice client vanished before insert", slog.String("client_id", invoice.ClientID))
			return apperrors.NewNotFoundError("client")
		}
		s.LogError(ctx, err, "Failed to save invoice")
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit invoice transaction")
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	committed = true
	return nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string) ([]domain.InvoiceWithClient, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	result := make([]domain.InvoiceWithClient, 0, len(invoices))
	if len(invoices) == 0 {
		return result, nil
	}

	seen := make(map[string]struct{}, len(invoices))
	clientIDs := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		if _, ok := seen[inv.ClientID]; !ok {
			seen[inv.ClientID] = struct{}{}
			clientIDs = append(clientIDs, inv.ClientID)
		}
	}
	clients, err := s.clientRepo.FindClientsByIDs(ctx, userID, clientIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoice clients")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	for _, inv := range invoices {
		item := domain.InvoiceWithClient{Invoice: inv}
		if client, ok := clients[inv.ClientID]; ok {
			item.Client = &client
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string, userID string) (*domain.InvoiceWithClient, error) {
	invoice, err := s.findOwnedInvoice(ctx, invoiceID, userID)
	if err != nil {
		return nil, err
	}
	return s.withClient(ctx, *invoice)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.InvoiceWithClient, error) {
	ctx, span := s.tracer.Start(ctx, "InvoiceService.UpdateInvoice", trace.WithAttributes(attribute.String("invoice.id", invoiceID)))
	defer span.End()

	update, err := toInvoiceUpdate(req)
	if err != nil {
		return nil, err
	}

	invoice, err := s.findOwnedInvoice(ctx, invoiceID, userID)
	if err != nil {
		return nil, err
	}
	if err := invoice.Apply(update, s.Now()); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("invoice")
		}
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		span.SetStatus(codes.Error, "update invoice")
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID), slog.String("status", string(invoice.Status)))
	return s.withClient(ctx, *invoice)
}

func toInvoiceUpdate(req dto.UpdateInvoiceRequest) (domain.InvoiceUpdate, error) {
	issueDate, err := dto.ParseOptionalDate(req.IssueDate)
	if err != nil {
		return domain.InvoiceUpdate{}, err
	}
	dueDate, err := dto.ParseOptionalDate(req.DueDate)
	if err != nil {
		return domain.InvoiceUpdate{}, err
	}
	update := domain.InvoiceUpdate{
		IssueDate:       issueDate,
		DueDate:         dueDate,
		Subtotal:        req.Subtotal,
		VATRate:         req.VATRate,
		DiscountPercent: req.DiscountPercent,
		DiscountDays:    req.DiscountDays,
	}
	if req.Status != nil {
		status := domain.InvoiceStatus(*req.Status)
		update.Status = &status
	}
	return update, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("invoice")
		}
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) RenderInvoicePDF(ctx context.Context, invoiceID string, userID string) (*domain.RenderedInvoice, error) {
	ctx, span := s.tracer.Start(ctx, "InvoiceService.RenderInvoicePDF", trace.WithAttributes(attribute.String("invoice.id", invoiceID)))
	defer span.End()

	if s.renderer == nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "invoice renderer not configured", nil)
	}

	invoice, err := s.findOwnedInvoice(ctx, invoiceID, userID)
	if err != nil {
		return nil, err
	}
	seller, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load seller profile")
		return nil, fmt.Errorf("failed to load seller profile: %w", err)
	}
	buyer, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoice client", slog.String("client_id", invoice.ClientID))
		return nil, fmt.Errorf("failed to load invoice client: %w", err)
	}

	doc := domain.InvoiceDocument{
		Invoice:        *invoice,
		Seller:         domain.SellerFromUser(*seller),
		Buyer:          domain.BuyerFromClient(*buyer),
		CurrencySymbol: s.currencySymbol,
	}

	start := time.Now()
	content, err := s.renderer.RenderInvoice(doc)
	s.metrics.InvoicePDFRendered(time.Since(start), err)
	if errors.Is(err, apperrors.ErrValidation) {
		s.LogInfo(ctx, "Invoice PDF rejected", slog.String("invoice_id", invoiceID), slog.String("reason", err.Error()))
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice PDF", slog.String("invoice_id", invoiceID))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render pdf")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to render invoice", err)
	}
	span.SetAttributes(attribute.Int("pdf.bytes", len(content)))

	return &domain.RenderedInvoice{
		FileName:    domain.InvoiceFileName(invoice.InvoiceNumber),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

func (s *invoiceService) findOwnedClient(ctx context.Context, clientID, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client")
		}
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if !client.OwnedBy(userID) {
		return nil, apperrors.NewNotFoundError("client")
	}
	return client, nil
}

func (s *invoiceService) findOwnedInvoice(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("invoice")
		}
		s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	if invoice.OwnerUserID != userID {
		return nil, apperrors.NewNotFoundError("invoice")
	}
	return invoice, nil
}

// withClient composes the read model. A client that vanished is left nil.
func (s *invoiceService) withClient(ctx context.Context, invoice domain.Invoice) (*domain.InvoiceWithClient, error) {
	result := &domain.InvoiceWithClient{Invoice: invoice}
	client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	switch {
	case err == nil:
		result.Client = client
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "Invoice client not found", slog.String("client_id", invoice.ClientID))
	default:
		s.LogError(ctx, err, "Failed to load invoice client", slog.String("client_id", invoice.ClientID))
		return nil, fmt.Errorf("failed to load invoice client: %w", err)
	}
	return result, nil
}

type noopInvoiceMetrics struct{}

func (noopInvoiceMetrics) InvoiceCreated(domain.InvoiceStatus)     {}
func (noopInvoiceMetrics) InvoiceNumberConflict()                  {}
func (noopInvoiceMetrics) InvoicePDFRendered(time.Duration, error) {}
