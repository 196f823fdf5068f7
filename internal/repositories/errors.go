package repositories

import (
	"errors"
	"fmt"

	"inventory/pkg/logger"
)

// StorageError is returned for every failure of the underlying store. Err
// carries the driver's cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err's chain contains a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageFailure(op string, err error) error {
	logger.Error().Err(err).Str("op", op).Msg("storage operation failed")
	return &StorageError{Op: op, Err: err}
}
