package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when a lookup matches no record
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index
	ErrDuplicateKey = errors.New("duplicate key")
)

// normalizeError maps driver errors the callers are expected to branch on
// to the repository sentinels; anything else passes through unchanged.
func normalizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	}
	return err
}
