package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/osse101/TornBot_Go/internal/domain"
)

// Cipher seals secrets into printable tokens and opens them again
type Cipher interface {
	Seal(plaintext []byte) (string, error)
	Open(token string) ([]byte, error)
}

// BoxCipher is a Cipher backed by NaCl secretbox. Tokens are base64(nonce || box).
type BoxCipher struct {
	key [KeySize]byte
}

// NewBoxCipher creates a cipher from a 32-byte key
func NewBoxCipher(key []byte) (*BoxCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%s: want %d bytes, got %d", ErrMsgInvalidKey, KeySize, len(key))
	}
	c := &BoxCipher{}
	copy(c.key[:], key)
	return c, nil
}

func (c *BoxCipher) Seal(plaintext []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgGenerateNonce, err)
	}
	out := secretbox.Seal(nonce[:], plaintext, &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (c *BoxCipher) Open(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return nil, domain.ErrDecryptFailed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, domain.ErrDecryptFailed
	}
	return plain, nil
}

// LoadOrCreateKey returns the encryption key from encoded (base64) when set, otherwise
// from path. A missing file is created with a fresh random key.
func LoadOrCreateKey(encoded, path string) ([]byte, error) {
	if encoded = strings.TrimSpace(encoded); encoded != "" {
		return decodeKey(encoded)
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return decodeKey(string(data))
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadKeyFile, err)
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGenerateKey, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgWriteKeyFile, err)
		}
	}
	if err := os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(key)+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteKeyFile, err)
	}
	slog.Default().Info(LogMsgGeneratedKey, "path", path)
	return key, nil
}

// decodeKey accepts standard or URL-safe base64, padded or not
func decodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if key, err := enc.DecodeString(s); err == nil && len(key) == KeySize {
			return key, nil
		}
	}
	return nil, fmt.Errorf("%s: expected base64 of %d bytes", ErrMsgInvalidKey, KeySize)
}
