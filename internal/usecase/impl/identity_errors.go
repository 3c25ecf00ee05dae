// Package impl contains the implementation of the application's business logic.
package impl

import (
	"authproxy/internal/domain/service"
	"authproxy/internal/errors"
)

// identityMessage returns the provider's message for err, or err's text when it did not come from the provider.
func identityMessage(err error) string {
	if identityErr, ok := errors.Find[*service.IdentityError](err); ok && identityErr.Message != "" {
		return identityErr.Message
	}

	return err.Error()
}
