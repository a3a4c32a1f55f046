package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/gmailer/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		clientSecretFile string
		tokenFile        string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize gmailer against Google and cache the token",
		Long: `Run the interactive browser-based authorization flow, even if a cached
credential already exists, and rewrite the token cache with the result.

The send command performs this flow automatically when no usable credential
is cached; auth exists to re-consent explicitly, for example after the
requested scopes changed (delete the token cache first in that case).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := &google.Resolver{
				ClientSecretFile: clientSecretFile,
				TokenFile:        tokenFile,
				Scopes:           google.DefaultScopes,
			}

			if _, err := resolver.Authorize(cmd.Context()); err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Authorization complete; token cached to %s\n", tokenFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientSecretFile, "client-secret", defaultClientSecretFile, "path to the OAuth client descriptor")
	cmd.Flags().StringVar(&tokenFile, "token-file", defaultTokenFile, "path to the token cache")

	return cmd
}
