package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ewintr.nl/ytcatalog/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	conf       *config.Config
	logger     *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytcatalog",
	Short: "Catalog of YouTube project tutorials",
	Long: `ytcatalog keeps a catalog of YouTube project tutorials.

Adding a video URL fetches its title, channel, length and description from
the YouTube Data API, derives the tech stack and a difficulty, and stores
the result through the catalog API. The catalog can then be listed and
filtered from the command line.`,
	Example: `  # Run the catalog API backed by sqlite
  STORAGE_DRIVER=sqlite ytcatalog serve

  # Add a tutorial
  ytcatalog add "https://www.youtube.com/watch?v=abc123" --difficulty Beginner

  # List React tutorials of at most five hours
  ytcatalog list --tech react --max-hours "0-5 hours"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if conf, err = config.Load(configFile); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = conf.NewLogger(os.Stderr)
		if conf.ConfigFileUsed != "" {
			logger.Debug("using config file", slog.String("path", conf.ConfigFileUsed))
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is ./ytcatalog.toml or $HOME/.config/ytcatalog/ytcatalog.toml)")
	rootCmd.AddCommand(serveCmd, listCmd, addCmd, facetsCmd)
}
