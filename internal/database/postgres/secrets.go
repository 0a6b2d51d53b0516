package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TornBot_Go/internal/database/generated"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/secrets"
)

// SecretsRepository implements encrypted secret storage for PostgreSQL
type SecretsRepository struct {
	q *generated.Queries
}

// NewSecretsRepository creates a new SecretsRepository
func NewSecretsRepository(pool *pgxpool.Pool) secrets.Repository {
	return &SecretsRepository{q: generated.New(pool)}
}

func (r *SecretsRepository) GetSecret(ctx context.Context, owner string) (string, bool, error) {
	v, err := r.q.GetSecret(ctx, owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.NewStoreError(opGetSecret, err)
	}
	return v, true, nil
}

func (r *SecretsRepository) PutSecret(ctx context.Context, owner, ciphertext string) error {
	err := r.q.PutSecret(ctx, generated.PutSecretParams{Owner: owner, Ciphertext: ciphertext})
	return domain.NewStoreError(opPutSecret, err)
}

func (r *SecretsRepository) DeleteSecret(ctx context.Context, owner string) (bool, error) {
	n, err := r.q.DeleteSecret(ctx, owner)
	if err != nil {
		return false, domain.NewStoreError(opDeleteSecret, err)
	}
	return n > 0, nil
}
