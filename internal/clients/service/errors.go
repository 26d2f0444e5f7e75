package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clientbook/internal/clients/store"
)

// ErrNotFound matches every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("client not found")

// NotFoundError reports that no client exists with ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("client %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// translate turns a store absence signal for id into a *NotFoundError. Any
// other error is returned as is.
func translate(err error, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}
