package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gmailer/internal/logging"
)

// rootCmd represents the base command for the gmailer application
var rootCmd = &cobra.Command{
	Use:   "gmailer",
	Short: "Send email through Gmail from the command line",
	Long: `gmailer authenticates against the Gmail API with OAuth 2.0 and sends a
single email per invocation:

  gmailer recipient@example.com "Subject" "Body"

Credentials are resolved from a token cache in the working directory. On the
first run (or after the cache is deleted) an interactive browser-based
authorization flow is performed and the resulting token is persisted.`,
	SilenceUsage: true,
}

var verbose bool

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gmailer version %s\n" .Version}}`)

	// If the first argument is not a known subcommand or flag, assume the
	// bare form `gmailer TO SUBJECT BODY` and route it to send
	if len(os.Args) > 1 && !isKnownCommand(os.Args[1]) {
		os.Args = append([]string{os.Args[0], "send"}, os.Args[1:]...)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// isKnownCommand reports whether arg names a registered subcommand, an alias,
// a flag, or one of cobra's built-in commands
func isKnownCommand(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return true
	}
	switch arg {
	case "help", "completion":
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cobra.OnInitialize(func() {
		logging.Setup(verbose)
	})

	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
}
