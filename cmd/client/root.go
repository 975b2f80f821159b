package main

import (
	"io"

	"github.com/MKhiriev/go-books-api/internal/adapter"
	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/spf13/cobra"
)

// app carries the state shared by all bookctl commands.
type app struct {
	out io.Writer
	log *logger.Logger

	overrides  config.ClientConfig
	jsonOutput bool
	verbose    bool

	newClient func(cfg config.Adapter, log *logger.Logger) (adapter.BooksClient, error)
	client    adapter.BooksClient
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bookctl",
		Short: "Command-line client for the books API",
		Long: `bookctl manages books stored by a go-books-api server.

Environment Variables:
  BOOKCTL_BASE_URL         Server URL (default: http://localhost:8080)
  BOOKCTL_TOKEN            Bearer token returned by register or login
  BOOKCTL_LOCALE           Preferred response language, e.g. "fr"
  BOOKCTL_REQUEST_TIMEOUT  Per-request timeout, e.g. "5s"`,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.overrides.Adapter.BaseURL, "server", "", "server URL (overrides BOOKCTL_BASE_URL)")
	flags.StringVar(&a.overrides.Adapter.Token, "token", "", "bearer token (overrides BOOKCTL_TOKEN)")
	flags.StringVar(&a.overrides.Adapter.Locale, "lang", "", "Accept-Language sent to the server (overrides BOOKCTL_LOCALE)")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout (overrides BOOKCTL_REQUEST_TIMEOUT)")
	flags.BoolVar(&a.jsonOutput, "json", false, "print JSON instead of human-readable text")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newWhoAmICmd(a),
		newBooksCmd(a),
		newVersionCmd(a),
		newHealthCmd(a),
	)

	return root
}

// connect resolves the client configuration and builds the API client.
func (a *app) connect(cmd *cobra.Command, _ []string) error {
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logger.SetLevel(level)

	cfg, err := config.GetClientConfig(a.overrides)
	if err != nil {
		return err
	}

	client, err := a.newClient(cfg.Adapter, a.log)
	if err != nil {
		return err
	}
	a.client = client

	a.log.Debug().Str("server", cfg.Adapter.BaseURL).Str("command", cmd.CommandPath()).Msg("client ready")
	return nil
}
