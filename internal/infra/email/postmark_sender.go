package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"authproxy/config"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client       *postmark.Client
	senderEmail  string
	supportEmail string
}

// NewPostmarkSender creates a Postmark-backed sender.
func NewPostmarkSender(cfg *config.EmailConfig, httpClient *http.Client) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: postmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: senderEmail is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	if httpClient != nil {
		client.HTTPClient = httpClient
	}

	supportEmail := cfg.SupportEmail
	if supportEmail == "" {
		supportEmail = cfg.SenderEmail
	}

	return &postmarkSender{
		client:       client,
		senderEmail:  cfg.SenderEmail,
		supportEmail: supportEmail,
	}, nil
}

// SendEmail sends through Postmark's transactional API. Link tracking stays off so reset links are not rewritten.
func (s *postmarkSender) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.senderEmail,
		ReplyTo:    s.supportEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TrackOpens: false,
		TrackLinks: "None",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	return nil
}
