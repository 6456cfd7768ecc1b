package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/SscSPs/freelance_books/internal/handlers"
	"github.com/SscSPs/freelance_books/internal/middleware"
	"github.com/SscSPs/freelance_books/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type APIHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	jwtSecret string
	userID    string

	users    *MockUserService
	tokens   *MockTokenService
	clients  *MockClientService
	expenses *MockExpenseService
	terms    *MockPaymentTermService
	invoices *MockInvoiceService
	health   *MockHealthService
}

func (suite *APIHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *APIHandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.cfg = &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}

	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)
	suite.clients = new(MockClientService)
	suite.expenses = new(MockExpenseService)
	suite.terms = new(MockPaymentTermService)
	suite.invoices = new(MockInvoiceService)
	suite.health = new(MockHealthService)

	suite.router = suite.newRouter(handlers.RouteDeps{})
}

func (suite *APIHandlerTestSuite) newRouter(deps handlers.RouteDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(r, suite.cfg, &portssvc.ServiceContainer{
		User:         suite.users,
		TokenService: suite.tokens,
		Client:       suite.clients,
		Expense:      suite.expenses,
		PaymentTerm:  suite.terms,
		Invoice:      suite.invoices,
		Health:       suite.health,
	}, deps)
	return r
}

// generateTestToken creates a signed JWT for the test user.
func (suite *APIHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "freelance-books-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *APIHandlerTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APIHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (suite *APIHandlerTestSuite) sampleInvoice() *domain.InvoiceWithClient {
	termID := uuid.NewString()
	return &domain.InvoiceWithClient{
		Invoice: domain.Invoice{
			InvoiceID:     uuid.NewString(),
			OwnerUserID:   suite.userID,
			ClientID:      uuid.NewString(),
			InvoiceNumber: "2024-0001",
			IssueDate:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			Status:        domain.InvoiceDraft,
			Subtotal:      decimal.RequireFromString("1000"),
			VATRate:       decimal.RequireFromString("25.5"),
			VATAmount:     decimal.RequireFromString("255"),
			TotalAmount:   decimal.RequireFromString("1255"),
			Discount:      &domain.DiscountOffer{Percent: decimal.RequireFromString("2"), Days: 7},
			PaymentTermID: &termID,
		},
		Client: &domain.Client{Name: "Acme Oy"},
	}
}

// --- Identity ---

func (suite *APIHandlerTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/api/invoices", "/api/clients", "/api/expenses", "/api/payment-terms", "/api/auth/me"} {
		w := suite.do(http.MethodGet, path, nil, false)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (suite *APIHandlerTestSuite) TestHealth_IsPublic() {
	suite.health.On("DatabaseConnected", mock.Anything).Return(true).Once()

	w := suite.do(http.MethodGet, "/api/health", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var resp handlers.HealthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(handlers.HealthResponse{Status: "ok", Database: "connected"}, resp)
}

func (suite *APIHandlerTestSuite) TestRegister() {
	user := &domain.User{UserID: suite.userID, Email: "jane@example.com", Name: "Jane"}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(req dto.RegisterRequest) bool {
		return req.Email == "jane@example.com" && req.Name == "Jane"
	})).Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", gin.H{
		"email": "jane@example.com", "password": "password1", "name": "Jane",
	}, false)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal(suite.userID, resp.User.UserID)
}

func (suite *APIHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.do(http.MethodPost, "/api/auth/register", gin.H{
		"email": "jane@example.com", "password": "short", "name": "Jane",
	}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.users.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.users.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "email already registered", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", gin.H{
		"email": "jane@example.com", "password": "password1", "name": "Jane",
	}, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("email already registered", suite.decodeError(w))
}

func (suite *APIHandlerTestSuite) TestLogin_WrongPassword() {
	suite.users.On("AuthenticateUser", mock.Anything, "jane@example.com", "nope-nope").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", gin.H{"email": "jane@example.com", "password": "nope-nope"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid email or password", suite.decodeError(w))
}

func (suite *APIHandlerTestSuite) TestLogin_RateLimited() {
	ipLimiter, err := middleware.NewIPLimiter("1-M", nil)
	suite.Require().NoError(err)
	suite.router = suite.newRouter(handlers.RouteDeps{AuthLimiter: ipLimiter})
	suite.users.On("AuthenticateUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized)

	body := gin.H{"email": "jane@example.com", "password": "nope-nope"}
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/auth/login", body, false).Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodPost, "/api/auth/login", body, false).Code)
}

func (suite *APIHandlerTestSuite) TestMe() {
	suite.users.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Email: "jane@example.com", Name: "Jane"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/auth/me", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "jane@example.com")
}

// --- Invoices ---

func (suite *APIHandlerTestSuite) createInvoiceBody() gin.H {
	return gin.H{
		"clientId":      uuid.NewString(),
		"issueDate":     "2024-01-20",
		"subtotal":      "1000.00",
		"paymentTermId": uuid.NewString(),
	}
}

func (suite *APIHandlerTestSuite) TestCreateInvoice_Success() {
	invoice := suite.sampleInvoice()
	suite.invoices.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.Subtotal != nil && req.Subtotal.Equal(decimal.RequireFromString("1000")) && req.VATRate == nil
	}), suite.userID).Return(invoice, nil).Once()

	w := suite.do(http.MethodPost, "/api/invoices", suite.createInvoiceBody(), true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-0001", resp.InvoiceNumber)
	suite.Equal("2024-02-03", resp.DueDate)
	suite.Equal("255.00", resp.VATAmount)
	suite.Equal("1255.00", resp.TotalAmount)
	suite.Require().NotNil(resp.Client)
	suite.Equal("Acme Oy", resp.Client.Name)
	suite.Require().NotNil(resp.DiscountDays)
	suite.Equal(7, *resp.DiscountDays)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *APIHandlerTestSuite) TestCreateInvoice_InvalidBodies() {
	tests := []struct {
		name   string
		mutate func(gin.H)
	}{
		{name: "missing subtotal", mutate: func(b gin.H) { delete(b, "subtotal") }},
		{name: "missing client", mutate: func(b gin.H) { delete(b, "clientId") }},
		{name: "missing payment term", mutate: func(b gin.H) { delete(b, "paymentTermId") }},
		{name: "sub-cent subtotal", mutate: func(b gin.H) { b["subtotal"] = "10.005" }},
		{name: "negative subtotal", mutate: func(b gin.H) { b["subtotal"] = "-1" }},
		{name: "subtotal above storable range", mutate: func(b gin.H) { b["subtotal"] = "1000000000000.00" }},
		{name: "rate above hundred", mutate: func(b gin.H) { b["vatRate"] = "120" }},
		{name: "unknown status", mutate: func(b gin.H) { b["status"] = "void" }},
		{name: "bad issue date", mutate: func(b gin.H) { b["issueDate"] = "20.01.2024" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := suite.createInvoiceBody()
			tt.mutate(body)
			w := suite.do(http.MethodPost, "/api/invoices", body, true)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestCreateInvoice_ErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "client not found", err: apperrors.NewNotFoundError("client"), wantStatus: http.StatusNotFound, wantMsg: "client not found"},
		{name: "term not found", err: apperrors.NewNotFoundError("payment term"), wantStatus: http.StatusNotFound, wantMsg: "payment term not found"},
		{
			name:       "number conflict",
			err:        apperrors.NewAppError(http.StatusConflict, "invoice number 2024-0002 is already taken, retry the request", apperrors.ErrConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    "invoice number 2024-0002 is already taken, retry the request",
		},
		{name: "infrastructure", err: apperrors.NewAppError(http.StatusInternalServerError, "db down", nil), wantStatus: http.StatusInternalServerError, wantMsg: "Failed to create invoice"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.invoices.On("CreateInvoice", mock.Anything, mock.Anything, suite.userID).Return(nil, tt.err).Once()
			w := suite.do(http.MethodPost, "/api/invoices", suite.createInvoiceBody(), true)
			suite.Equal(tt.wantStatus, w.Code)
			suite.Equal(tt.wantMsg, suite.decodeError(w))
		})
	}
}

func (suite *APIHandlerTestSuite) TestGetInvoice_NonUUIDIsNotFound() {
	w := suite.do(http.MethodGet, "/api/invoices/not-a-uuid", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("invoice not found", suite.decodeError(w))
	suite.invoices.AssertNotCalled(suite.T(), "GetInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestGetInvoice_NotOwned() {
	id := uuid.NewString()
	suite.invoices.On("GetInvoice", mock.Anything, id, suite.userID).Return(nil, apperrors.NewNotFoundError("invoice")).Once()

	w := suite.do(http.MethodGet, "/api/invoices/"+id, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APIHandlerTestSuite) TestListInvoices() {
	suite.invoices.On("ListInvoices", mock.Anything, suite.userID).
		Return([]domain.InvoiceWithClient{*suite.sampleInvoice()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/invoices", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *APIHandlerTestSuite) TestUpdateInvoice() {
	invoice := suite.sampleInvoice()
	invoice.Status = domain.InvoicePaid
	suite.invoices.On("UpdateInvoice", mock.Anything, invoice.InvoiceID, mock.MatchedBy(func(req dto.UpdateInvoiceRequest) bool {
		return req.Status != nil && *req.Status == "paid" && req.Subtotal == nil
	}), suite.userID).Return(invoice, nil).Once()

	w := suite.do(http.MethodPut, "/api/invoices/"+invoice.InvoiceID, gin.H{"status": "paid"}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"paid"`)
}

func (suite *APIHandlerTestSuite) TestDeleteInvoice() {
	id := uuid.NewString()
	suite.invoices.On("DeleteInvoice", mock.Anything, id, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/invoices/"+id, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *APIHandlerTestSuite) TestDownloadInvoicePDF() {
	id := uuid.NewString()
	suite.invoices.On("RenderInvoicePDF", mock.Anything, id, suite.userID).Return(&domain.RenderedInvoice{
		FileName:    "invoice-2024-0001.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.3 test"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/invoices/"+id+"/pdf", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="invoice-2024-0001.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal("%PDF-1.3 test", w.Body.String())
}

// --- Payment terms ---

func (suite *APIHandlerTestSuite) TestListPaymentTerms() {
	suite.terms.On("ListVisiblePaymentTerms", mock.Anything, suite.userID).Return([]domain.PaymentTerm{
		{PaymentTermID: uuid.NewString(), Scope: domain.SystemScope(), Label: "7 days net", NetDays: 7},
		{PaymentTermID: uuid.NewString(), Scope: domain.OwnerScope(suite.userID), Label: "Mine", NetDays: 10},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/payment-terms", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PaymentTermResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.True(resp[0].IsDefault)
	suite.False(resp[1].IsDefault)
}

func (suite *APIHandlerTestSuite) TestCreatePaymentTerm_MissingNetDays() {
	w := suite.do(http.MethodPost, "/api/payment-terms", gin.H{"label": "No days"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.terms.AssertNotCalled(suite.T(), "CreatePaymentTerm", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestCreatePaymentTerm_ZeroNetDays() {
	term := &domain.PaymentTerm{PaymentTermID: uuid.NewString(), Scope: domain.OwnerScope(suite.userID), Label: "On receipt", NetDays: 0}
	suite.terms.On("CreatePaymentTerm", mock.Anything, mock.Anything, suite.userID).Return(term, nil).Once()

	w := suite.do(http.MethodPost, "/api/payment-terms", gin.H{"label": "On receipt", "netDays": 0}, true)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *APIHandlerTestSuite) TestDeletePaymentTerm_NotOwned() {
	id := uuid.NewString()
	suite.terms.On("DeletePaymentTerm", mock.Anything, id, suite.userID).Return(apperrors.NewNotFoundError("payment term")).Once()

	w := suite.do(http.MethodDelete, "/api/payment-terms/"+id, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("payment term not found", suite.decodeError(w))
}

// --- Clients and expenses ---

func (suite *APIHandlerTestSuite) TestCreateClient_MissingName() {
	w := suite.do(http.MethodPost, "/api/clients", gin.H{"email": "a@b.test"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APIHandlerTestSuite) TestDeleteClient_StillInvoiced() {
	id := uuid.NewString()
	suite.clients.On("DeleteClient", mock.Anything, id, suite.userID).
		Return(apperrors.NewAppError(http.StatusConflict, "client still has invoices", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/clients/"+id, nil, true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("client still has invoices", suite.decodeError(w))
}

func (suite *APIHandlerTestSuite) TestCreateExpense_UnknownCategory() {
	w := suite.do(http.MethodPost, "/api/expenses", gin.H{
		"amount": "12.50", "date": "2024-01-20", "category": "yacht",
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.expenses.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *APIHandlerTestSuite) TestCreateExpense_Success() {
	expense := &domain.Expense{
		ExpenseID: uuid.NewString(),
		Amount:    decimal.RequireFromString("12.5"),
		Date:      time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Category:  domain.ExpenseSoftware,
	}
	suite.expenses.On("CreateExpense", mock.Anything, mock.Anything, suite.userID).Return(expense, nil).Once()

	w := suite.do(http.MethodPost, "/api/expenses", gin.H{
		"amount": "12.50", "date": "2024-01-20", "category": "software",
	}, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"amount":"12.50"`)
}

func TestAPIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(APIHandlerTestSuite))
}
