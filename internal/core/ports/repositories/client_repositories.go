package repositories

import (
	"context"

	"github.com/SscSPs/freelance_books/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client regardless of owner; callers check ownership.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientsByIDs retrieves the given clients of one owner keyed by ID.
	// Missing IDs are absent from the map.
	FindClientsByIDs(ctx context.Context, ownerUserID string, clientIDs []string) (map[string]domain.Client, error)

	// ListClientsByOwner retrieves all clients of a user ordered by name.
	ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client of the given owner. A client still
	// referenced by invoices yields apperrors.ErrConflict.
	DeleteClient(ctx context.Context, clientID string, ownerUserID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
