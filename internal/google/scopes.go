package google

import (
	gmail "google.golang.org/api/gmail/v1"
)

// DefaultScopes are the Gmail OAuth scopes gmailer requests.
//
// Compose covers creating and sending mail; modify covers the sent-mail
// bookkeeping Gmail performs on the authenticated mailbox.
var DefaultScopes = []string{
	gmail.GmailComposeScope,
	gmail.GmailModifyScope,
}
