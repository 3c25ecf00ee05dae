package impl

import (
	"io"
	"log/slog"

	"authproxy/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(emailEnabled bool) *config.Config {
	return &config.Config{
		Email: &config.EmailConfig{
			Enabled: emailEnabled,
		},
		GitHub: &config.GitHubConfig{
			FrontendCallbackURL: "http://localhost:5173/auth/callback",
		},
	}
}
