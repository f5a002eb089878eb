package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foundry-science/toolctl/internal/tooldriver"
	"github.com/foundry-science/toolctl/pkg/core/config"
	"github.com/foundry-science/toolctl/pkg/core/logging"
)

var (
	cfgFile    string
	serverAddr string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "toolctl",
	Short: "Command-line client for Foundry lab tool drivers",
	Long: `toolctl talks to a remote tool driver server over gRPC.

Commands:
  status   - check server state and uptime
  exec     - execute a Python script on the toolbox tool
  repl     - interactive line-by-line script execution
  demo     - run a few built-in demo scripts
  version  - show build information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", config.DefaultServerAddress, "Tool driver server address")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig resolves the effective settings: flags beat env, env beats the
// config file, the file beats built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("server") {
		cfg.Server.Address = serverAddr
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logging.SetDefaultLevel(logging.ParseLevel(cfg.Log.Level))
	return cfg, nil
}

// newClient connects to the configured tool driver server. The connection
// lives for the rest of the process; callers close it on the way out.
func newClient(cmd *cobra.Command) (*tooldriver.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return tooldriver.New(tooldriver.Config{
		Address: cfg.Server.Address,
		Timeout: cfg.Server.Timeout.Duration,
	})
}
