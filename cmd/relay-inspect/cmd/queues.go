package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onrelay/relay-go/model/relay"
)

var flagPara uint32

func init() {
	rootCmd.AddCommand(queuesCmd)

	queuesCmd.Flags().Uint32Var(&flagPara, "para", 0, "the para whose queue to print")
}

var queuesCmd = &cobra.Command{
	Use:   "queues",
	Short: "list queue lengths, or print one para's pending messages",
	Run: func(cmd *cobra.Command, args []string) {
		storages := InitStorages()
		defer storages.DB.Close()

		if cmd.Flags().Changed("para") {
			para := relay.ParaID(flagPara)

			log.Info().Msgf("getting queue contents of para: %v", para)
			messages, err := storages.Queues.Contents(para)
			if err != nil {
				log.Fatal().Err(err).Msg("could not get queue contents")
			}

			prettyPrint(messages)
			return
		}

		paras, err := storages.Queues.Paras()
		if err != nil {
			log.Fatal().Err(err).Msg("could not list paras")
		}

		lengths := make(map[string]uint64, len(paras))
		for _, para := range paras {
			length, err := storages.Queues.Length(para)
			if err != nil {
				log.Fatal().Err(err).Msgf("could not get queue length of para %v", para)
			}
			lengths[para.String()] = length
		}

		prettyPrint(lengths)
	},
}
