package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "quiz-widget",
		Short:        "Multiple-choice quiz widget served over WebSocket or played in the terminal",
		SilenceUsage: true,
	}

	// .env is optional; real environment variables win over it. It is read
	// before the flags so PORT and CONFIG_PATH from it become flag defaults.
	dotenvErr := godotenv.Load()
	if errors.Is(dotenvErr, fs.ErrNotExist) {
		dotenvErr = nil
	}
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if dotenvErr != nil {
			cmd.PrintErrln("warning: cannot read .env:", dotenvErr)
		}
	}

	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on (overrides server.port)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewStartCmd(&configPath, &port))
	cmd.AddCommand(NewPlayCmd(&configPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewSeedCmd(&configPath))
	return cmd
}
