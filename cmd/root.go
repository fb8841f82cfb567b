package cmd

import (
	"os"
	"stonex_server/config"
	"stonex_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	logger *gecho.Logger
	cfg    *structs.Config
)

var rootCmd = &cobra.Command{
	Use:   "stonex",
	Short: "BD StoneX catalog backend",
	Long: `Serves the public granite and marble catalog, the password protected
admin API and the media upload proxy.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		envErr := godotenv.Load()

		cfg = config.GetConfig()
		logger = config.InitializeLogger()

		if envErr != nil {
			logger.Debug("No .env file found, proceeding with system environment variables")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, hashPasswordCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
