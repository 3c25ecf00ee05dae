package entity

import (
	"fmt"
	"strings"
)

// ProviderType identifies an external OAuth provider.
type ProviderType string

const (
	ProviderTypeGitHub ProviderType = "github"
)

// OAuthProfile is the subset of a provider profile needed to resolve a local user.
type OAuthProfile struct {
	Provider ProviderType
	ID       int64
	Login    string
	Email    string // Empty when the account hides its primary address.
	Name     string
}

// ResolvedEmail returns the profile email, or a deterministic placeholder built from id and login.
func (p *OAuthProfile) ResolvedEmail() string {
	if email := strings.TrimSpace(p.Email); email != "" {
		return email
	}

	return fmt.Sprintf("%d@%s.github.com", p.ID, p.Login)
}

// DisplayName returns the profile name, falling back to the login.
func (p *OAuthProfile) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}

	return p.Login
}
