package object

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var (
	// ErrNotFound is returned when a storage key has no object behind it.
	ErrNotFound = errors.New("object not found")

	// ErrInvalidKey is returned for empty keys or keys that escape the store root.
	ErrInvalidKey = errors.New("invalid storage key")
)

// ObjectStore defines the contract for saving and retrieving generated files.
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Exists(ctx context.Context, storageKey string) (bool, error)
}

// CleanKey normalizes a storage key and rejects traversal or absolute paths.
func CleanKey(storageKey string) (string, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(storageKey, "\\", "/"))
	if raw == "" || strings.HasPrefix(raw, "/") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(raw, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	clean := path.Clean(raw)
	if clean == "." {
		return "", ErrInvalidKey
	}
	return clean, nil
}
