package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/logic"
)

// initCmd: tlogic init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = logic.DefaultConfigFile
	}

	if err := logic.WriteConfig(configurationPath, logic.DefaultConfig()); err != nil {
		return "", err
	}
	return configurationPath, nil
}
