package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	BlockstoreFlagName = "blockstore"
)

func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "env", "path to the configuration file, or 'env' to configure from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(BlockstoreFlagName, "./lvldbdata", "path to the leveldb data directory")
	_ = viper.BindPFlag(BlockstoreFlagName, cmd.PersistentFlags().Lookup(BlockstoreFlagName))
}
