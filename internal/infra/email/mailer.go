package email

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"authproxy/config"
	"authproxy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	tagResetPassword = "reset-password"
	tagNewAccount    = "new-account"
)

// Params defines the dependencies of the mailer
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client
}

type mailer struct {
	sender       Sender
	projectName  string
	frontendHost string
	resetHours   int
}

// NewMailer picks Postmark when email is enabled and the log sender otherwise.
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Email

	var sender Sender
	if cfg.Enabled {
		postmarkSender, err := NewPostmarkSender(cfg, params.HTTPClient)
		if err != nil {
			return nil, err
		}
		sender = postmarkSender
	} else {
		sender = NewLogSender(params.Logger)
	}

	resetHours := 48
	if params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetHours = int(params.Config.Auth.ResetTokenTTL.Hours())
	}

	return newMailer(sender, cfg, resetHours), nil
}

func newMailer(sender Sender, cfg *config.EmailConfig, resetHours int) *mailer {
	projectName := cfg.ProjectName
	if projectName == "" {
		projectName = "authproxy"
	}

	return &mailer{
		sender:       sender,
		projectName:  projectName,
		frontendHost: strings.TrimRight(cfg.FrontendHost, "/"),
		resetHours:   resetHours,
	}
}

// SendResetPasswordEmail sends the link carrying a password reset token.
func (m *mailer) SendResetPasswordEmail(ctx context.Context, email, token string) error {
	body, err := render("reset_password.html", map[string]any{
		"Email":       email,
		"ProjectName": m.projectName,
		"Link":        m.frontendHost + "/reset-password?token=" + url.QueryEscape(token),
		"ValidHours":  m.resetHours,
	})
	if err != nil {
		return err
	}

	return m.sender.SendEmail(ctx, Message{
		To:       email,
		Subject:  m.projectName + " - Password recovery for " + email,
		Tag:      tagResetPassword,
		HTMLBody: body,
	})
}

// SendNewAccountEmail greets a freshly provisioned user.
func (m *mailer) SendNewAccountEmail(ctx context.Context, email, username string) error {
	if username == "" {
		username = email
	}

	body, err := render("new_account.html", map[string]any{
		"Email":       email,
		"Username":    username,
		"ProjectName": m.projectName,
		"Link":        m.frontendHost,
	})
	if err != nil {
		return err
	}

	return m.sender.SendEmail(ctx, Message{
		To:       email,
		Subject:  m.projectName + " - New account for " + username,
		Tag:      tagNewAccount,
		HTMLBody: body,
	})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return buf.String(), nil
}
