package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddles/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game menu over SSH",
	Long: `Start an SSH server. Every connection gets its own menu, games and
difficulty; all players share one leaderboard, keyed by SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.paddles/host_key

Examples:
  paddles serve
  paddles serve --ssh :2222
  paddles serve --host-key ./my_host_key --db ./scores.db

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to a game config YAML used by every session")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		ConfigPath:  flagServeConfig,
		TickRate:    flagFPS,
		IdleTimeout: flagIdleTimeout,
		Logger:      logger.WithPrefix("paddles-ssh"),
	})
	if err != nil {
		return err
	}
	return server.ListenAndServe()
}
