package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/core/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
	userID   string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.OwnerUserID == suite.userID &&
			e.Category == domain.ExpenseSoftware &&
			e.Amount.Equal(decimal.RequireFromString("49.90")) &&
			e.Date.Equal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Amount:   decPtr("49.90"),
		Date:     "2024-01-20",
		Category: "software",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Nil(expense.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Invalid() {
	tests := []struct {
		name string
		req  dto.CreateExpenseRequest
	}{
		{name: "missing amount", req: dto.CreateExpenseRequest{Date: "2024-01-20", Category: "travel"}},
		{name: "negative amount", req: dto.CreateExpenseRequest{Amount: decPtr("-1"), Date: "2024-01-20", Category: "travel"}},
		{name: "bad date", req: dto.CreateExpenseRequest{Amount: decPtr("1"), Date: "20.01.2024", Category: "travel"}},
		{name: "unknown category", req: dto.CreateExpenseRequest{Amount: decPtr("1"), Date: "2024-01-20", Category: "yacht"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateExpense(context.Background(), tt.req, suite.userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_OtherOwnerIsNotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).
		Return(&domain.Expense{ExpenseID: expenseID, OwnerUserID: uuid.NewString()}, nil).Once()

	_, err := suite.service.UpdateExpense(ctx, expenseID, dto.UpdateExpenseRequest{Amount: decPtr("10")}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_Success() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{
		ExpenseID:   expenseID,
		OwnerUserID: suite.userID,
		Amount:      decimal.RequireFromString("10"),
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:    domain.ExpenseOffice,
	}
	suite.mockRepo.On("FindExpenseByID", ctx, expenseID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	category := "hardware"
	expense, err := suite.service.UpdateExpense(ctx, expenseID, dto.UpdateExpenseRequest{Category: &category}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ExpenseHardware, expense.Category)
	suite.True(expense.Amount.Equal(decimal.RequireFromString("10")))
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	suite.mockRepo.On("DeleteExpense", ctx, expenseID, suite.userID).Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteExpense(ctx, expenseID, suite.userID), apperrors.ErrNotFound)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
