package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/secrets"
)

// SecretsRepository implements encrypted secret storage for SQLite
type SecretsRepository struct {
	db *sql.DB
}

// NewSecretsRepository creates a new SecretsRepository
func NewSecretsRepository(db *sql.DB) secrets.Repository {
	return &SecretsRepository{db: db}
}

func (r *SecretsRepository) GetSecret(ctx context.Context, owner string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, getSecret, owner).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.NewStoreError(opGetSecret, err)
	}
	return v, true, nil
}

func (r *SecretsRepository) PutSecret(ctx context.Context, owner, ciphertext string) error {
	_, err := r.db.ExecContext(ctx, putSecret, owner, ciphertext)
	return domain.NewStoreError(opPutSecret, err)
}

func (r *SecretsRepository) DeleteSecret(ctx context.Context, owner string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteSecret, owner)
	if err != nil {
		return false, domain.NewStoreError(opDeleteSecret, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.NewStoreError(opDeleteSecret, err)
	}
	return n > 0, nil
}
