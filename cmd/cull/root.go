package main

import (
	"cull/internal/config"
	"cull/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cull",
		Short: "Sort image collections from the keyboard",
		Long: `
	::'######::'##::::'##:'##:::::::'##:::::::
	:'##... ##: ##:::: ##: ##::::::: ##:::::::
	: ##:::..:: ##:::: ##: ##::::::: ##:::::::
	: ##::::::: ##:::: ##: ##::::::: ##:::::::
	: ##::: ##: ##:::: ##: ##::::::: ##:::::::
	:. ######::. #######:: ########: ########:
	::......::::.......:::........::........::

Cull walks your image folders, shows one image at a time, and logs
single-key decisions. Nothing moves until you run the shell script it
writes.
		`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadFile(cfgFile)
			} else {
				cfg, err = config.Load()
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/cull/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewReviewCmd())
	rootCmd.AddCommand(NewScanCmd())

	return rootCmd
}
