// Package cmd implements the command-line interface for gmailer.
//
// This package provides the following commands:
//   - send: Send a single email through the Gmail API
//   - auth: Run the interactive authorization flow and rewrite the token cache
//   - version: Display version information
//
// The send command is the default command: `gmailer TO SUBJECT BODY` is
// rewritten to `gmailer send TO SUBJECT BODY` when the first argument does
// not name a subcommand.
package cmd
