package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sweeplabs/sweep-bridging/config"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
)

func init() {
	config.BindFlags(rootCMD)
	rootCMD.PersistentFlags().String("name", "", "service instance name")
	_ = viper.BindPFlag("name", rootCMD.PersistentFlags().Lookup("name"))
}

func Execute() {
	rootCMD.AddCommand(runCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
