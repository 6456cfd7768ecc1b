package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freelance_books/internal/core/ports/services"
	"github.com/SscSPs/freelance_books/internal/dto"
	"github.com/google/uuid"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{BaseService: newBaseService(), clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// optionalText trims s and maps blank values to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client")
		}
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	if !client.OwnedBy(userID) {
		s.LogDebug(ctx, "Client belongs to another user", slog.String("client_id", clientID))
		return nil, apperrors.NewNotFoundError("client")
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	now := s.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		OwnerUserID: userID,
		Name:        strings.TrimSpace(req.Name),
		Email:       optionalText(req.Email),
		Phone:       optionalText(req.Phone),
		Address:     optionalText(req.Address),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, clientID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		client.Email = optionalText(req.Email)
	}
	if req.Phone != nil {
		client.Phone = optionalText(req.Phone)
	}
	if req.Address != nil {
		client.Address = optionalText(req.Address)
	}
	client.LastUpdatedAt = s.Now()
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return apperrors.NewAppError(http.StatusConflict, "client still has invoices", err)
		case errors.Is(err, apperrors.ErrNotFound):
			return apperrors.NewNotFoundError("client")
		}
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
