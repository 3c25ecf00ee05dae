package usecase

import "context"

// ResetPasswordInput defines the data required to set a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// PasswordUsecase covers the email based password reset flow.
type PasswordUsecase interface {
	RecoverPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
