package main

import (
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := HandleExitError(os.Stderr, NewRootCommand().ExecuteContext(ctx))
	stop()
	os.Exit(exitCode)
}

// NewRootCommand reads the environment first; flags override it.
func NewRootCommand() *cobra.Command {
	config := LoadConfigFromEnv()

	command := &cobra.Command{
		Use:           "sc",
		Short:         "SC microservice: spreadsheet cells with formulas evaluated on read",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApp(cmd.Context(), config)
		},
	}

	flags := command.Flags()
	flags.StringVarP(&config.Repository, "repository", "r", config.Repository,
		"cell repository: "+RepositorySqlite+", "+RepositoryFirebase+" or "+RepositoryBolt+" (env SC_REPOSITORY)")
	flags.StringVar(&config.DatabasePath, "database", config.DatabasePath, "sqlite/bolt database file (env DATABASE_FILEPATH)")
	flags.StringVar(&config.FirebaseName, "fbname", config.FirebaseName, "firebase realtime database name (env FBNAME)")
	flags.StringVar(&config.ListenAddress, "listen", config.ListenAddress, "HTTP listen address (env LISTEN_ADDRESS)")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "debug, info, warning or error (env LOG_LEVEL)")

	return command
}
