package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(outgoingCmd)
}

var outgoingCmd = &cobra.Command{
	Use:   "outgoing",
	Short: "list paras scheduled for offboarding",
	Run: func(cmd *cobra.Command, args []string) {
		storages := InitStorages()
		defer storages.DB.Close()

		paras, err := storages.Outgoing.Peek()
		if err != nil {
			log.Fatal().Err(err).Msg("could not get outgoing paras")
		}

		prettyPrint(paras)
	},
}
