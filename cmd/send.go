package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gmailer/internal/gmail"
	"github.com/teemow/gmailer/internal/google"
	"github.com/teemow/gmailer/internal/logging"
	"github.com/teemow/gmailer/internal/render"
)

const (
	defaultClientSecretFile = "client_secret.json"
	defaultTokenFile        = "token.json"
)

// newSender builds the real Gmail sender from a resolved credential. It is a
// package variable so tests can substitute a fake without network access or
// interactive consent.
var newSender = func(ctx context.Context, resolver *google.Resolver) (gmail.Sender, error) {
	httpClient, err := resolver.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("authorization failed: %w", err)
	}
	return gmail.NewClient(ctx, httpClient)
}

func newSendCmd() *cobra.Command {
	var (
		clientSecretFile string
		tokenFile        string
		cc               string
		bcc              string
		attachments      []string
		html             bool
		markdown         bool
		data             []string
	)

	cmd := &cobra.Command{
		Use:   "send TO SUBJECT BODY",
		Short: "Send a single email through Gmail",
		Long: `Send one email to the given recipient(s) through the Gmail API, for the
authenticated user's own mailbox. TO may be a comma-separated list.

The body is plain text by default; --html sends it as-is with an HTML
content type and --markdown renders it from Markdown to HTML first.

Each invocation performs one independent send. Rerunning with the same
arguments produces a second message; there is no dedup or idempotency key.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := args[2]

			if len(data) > 0 {
				vars, err := parseData(data)
				if err != nil {
					return err
				}
				expanded, err := render.Template(body, vars)
				if err != nil {
					return err
				}
				body = expanded
			}

			if markdown {
				rendered, err := render.Markdown(body)
				if err != nil {
					return err
				}
				body = rendered
				html = true
			}

			msg := &gmail.Message{
				To:          splitAddresses(args[0]),
				Cc:          splitAddresses(cc),
				Bcc:         splitAddresses(bcc),
				Subject:     args[1],
				Body:        body,
				HTML:        html,
				Attachments: attachments,
			}

			resolver := &google.Resolver{
				ClientSecretFile: clientSecretFile,
				TokenFile:        tokenFile,
				Scopes:           google.DefaultScopes,
			}

			ctx := cmd.Context()
			sender, err := newSender(ctx, resolver)
			if err != nil {
				return err
			}

			id, err := sender.Send(ctx, msg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Message sent; id=%s\n", id)
			slog.Debug("send complete",
				logging.Operation("cmd.send"),
				logging.Status(logging.StatusSuccess))
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "treat body as HTML")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render body from Markdown to HTML")
	cmd.MarkFlagsMutuallyExclusive("html", "markdown")
	cmd.Flags().StringVar(&cc, "cc", "", "CC address(es), comma-separated")
	cmd.Flags().StringVar(&bcc, "bcc", "", "BCC address(es), comma-separated")
	cmd.Flags().StringArrayVar(&attachments, "attach", nil, "file to attach (repeatable)")
	cmd.Flags().StringArrayVar(&data, "data", nil, "template variable as key=value; the body is expanded as a Go template (repeatable)")
	cmd.Flags().StringVar(&clientSecretFile, "client-secret", defaultClientSecretFile, "path to the OAuth client descriptor")
	cmd.Flags().StringVar(&tokenFile, "token-file", defaultTokenFile, "path to the token cache")

	return cmd
}

// splitAddresses splits a comma-separated string of email addresses
func splitAddresses(addresses string) []string {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]string, 0, len(parts))
	for _, addr := range parts {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseData turns repeated key=value flags into a template context
func parseData(kvs []string) (map[string]any, error) {
	vars := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --data value %q, expected key=value", kv)
		}
		vars[key] = value
	}
	return vars, nil
}
