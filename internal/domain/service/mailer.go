package service

import "context"

// Mailer sends the transactional emails of the account flows.
type Mailer interface {
	// SendResetPasswordEmail sends a link containing a password reset token.
	SendResetPasswordEmail(ctx context.Context, email, token string) error

	// SendNewAccountEmail greets a freshly provisioned user.
	SendNewAccountEmail(ctx context.Context, email, username string) error
}
