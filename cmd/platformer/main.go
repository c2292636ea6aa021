// platformer is a side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer               - Play locally
//	platformer serve         - Start SSH server for remote play
//	platformer config        - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (local play logs nowhere by default)
//	--debug             - Log every frame
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal side-scrolling platformer",
	Long: `A side-scrolling platformer rendered as ASCII in your terminal.

Walk with A and D, jump with W, quit with Q. Platforms rise to the right;
fall between them and you keep falling.

Available commands:
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  platformer
  platformer --backend tcell
  platformer --config ./platformer.yaml --log-file /tmp/platformer.log --debug
  platformer serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
