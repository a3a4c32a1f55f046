package gmail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/teemow/gmailer/internal/logging"
)

// Sender submits a composed message to the authenticated user's mailbox and
// returns the opaque id Gmail assigned to it.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// Client wraps the Gmail Users service
type Client struct {
	svc *gmail.UsersService
}

// NewClient creates a Gmail client from an OAuth2-authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return &Client{svc: svc.Users}, nil
}

// Send submits msg for the authenticated user ("me"). There is no retry and
// no dedup: each call produces an independent send, and remote failures are
// propagated verbatim.
func (c *Client) Send(ctx context.Context, msg *Message) (string, error) {
	raw, err := msg.Raw()
	if err != nil {
		return "", err
	}

	sent, err := c.svc.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	slog.Debug("message sent",
		logging.Operation("gmail.send"),
		logging.Recipient(msg.To[0]),
		slog.String("message_id", sent.Id))

	return sent.Id, nil
}
