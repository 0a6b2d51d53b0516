package repository

import "context"

// Secrets defines the interface for encrypted secret persistence.
// Values are opaque ciphertext tokens; decryption happens in the secrets service.
type Secrets interface {
	GetSecret(ctx context.Context, owner string) (string, bool, error)
	PutSecret(ctx context.Context, owner, ciphertext string) error
	DeleteSecret(ctx context.Context, owner string) (bool, error)
}
