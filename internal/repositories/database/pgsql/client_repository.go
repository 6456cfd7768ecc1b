package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	portsrepo "github.com/SscSPs/freelance_books/internal/core/ports/repositories"
	"github.com/SscSPs/freelance_books/internal/models"
	"github.com/SscSPs/freelance_books/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, owner_user_id, name, email, phone, address, created_at, last_updated_at`

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.OwnerUserID, m.Name, m.Email, m.Phone, m.Address, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to save client "+m.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID,
		&m.OwnerUserID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) FindClientsByIDs(ctx context.Context, ownerUserID string, clientIDs []string) (map[string]domain.Client, error) {
	result := make(map[string]domain.Client, len(clientIDs))
	if len(clientIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_user_id = $1 AND client_id = ANY($2::uuid[]);`
	rows, err := r.Pool.Query(ctx, query, ownerUserID, clientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients by IDs: %w", err)
	}
	modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	for _, m := range modelClients {
		result[m.ClientID] = mapping.ToDomainClient(m)
	}
	return result, nil
}

func (r *PgxClientRepository) ListClientsByOwner(ctx context.Context, ownerUserID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE owner_user_id = $1 ORDER BY name ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, last_updated_at = $5
		WHERE client_id = $6 AND owner_user_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Email, m.Phone, m.Address, m.LastUpdatedAt, m.ClientID, m.OwnerUserID)
	if err != nil {
		return mapWriteError(err, "failed to update client "+m.ClientID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", m.ClientID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string, ownerUserID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1 AND owner_user_id = $2;`, clientID, ownerUserID)
	if err != nil {
		return mapWriteError(err, "failed to delete client "+clientID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	return nil
}
