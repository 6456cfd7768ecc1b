package services

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client owned by userID. Clients of other users are not found.
	GetClientByID(ctx context.Context, clientID string, userID string) (*domain.Client, error)

	// ListClients retrieves all clients of a user.
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string, userID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
