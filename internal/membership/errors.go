package membership

import (
	"errors"

	"gym-frontdesk/internal/apperr"
)

func storeErr(err error, domain string) error {
	// Already classified further down, e.g. inside a transaction callback.
	if _, ok := apperr.As(err); ok {
		return err
	}
	return apperr.Store(err, domain)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
