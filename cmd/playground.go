package cmd

import (
	"log"
	"os"

	"github.com/josephlewis42/cmdexpr/core/playground"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// playgroundCmd compiles pipelines interactively
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Compile pipelines interactively.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		events, logFd, err := openEventLog(cfg)
		if err != nil {
			return err
		}
		defer logFd.Close()

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)
		playgroundLogger.Printf("Session: %s", events.SessionID())
		playgroundLogger.Println("Type :help for builtins, :quit to exit.")

		p := playground.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, events)
		return p.Run(os.Stdin, isatty.IsTerminal(os.Stdin.Fd()))
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
