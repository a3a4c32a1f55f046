// Package gmail composes and sends email through the Gmail API.
//
// A Message is the ephemeral value object for a single send attempt: it is
// constructed per invocation, encoded into the base64url RFC 2822 envelope
// the API expects, submitted once, and never persisted. The Sender interface
// isolates the remote call so it can be substituted with a fake in tests.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx, httpClient)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg := &gmail.Message{
//	    To:      []string{"recipient@example.com"},
//	    Subject: "Hello",
//	    Body:    "This is a test email",
//	}
//	id, err := client.Send(ctx, msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
package gmail
