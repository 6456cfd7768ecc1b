package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/freelance_books/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_DatabaseConnected(t *testing.T) {
	up := new(MockHealthChecker)
	up.On("Ping", mock.Anything).Return(nil).Once()
	assert.True(t, services.NewHealthService(up).DatabaseConnected(context.Background()))

	down := new(MockHealthChecker)
	down.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	assert.False(t, services.NewHealthService(down).DatabaseConnected(context.Background()))

	assert.False(t, services.NewHealthService(nil).DatabaseConnected(context.Background()))
}
