package cmd

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
)

var flagHeadPara uint32

func init() {
	rootCmd.AddCommand(headsCmd)

	headsCmd.Flags().Uint32Var(&flagHeadPara, "para", 0, "the para whose chain head to print")
}

var headsCmd = &cobra.Command{
	Use:   "heads",
	Short: "print message queue chain heads",
	Run: func(cmd *cobra.Command, args []string) {
		storages := InitStorages()
		defer storages.DB.Close()

		if cmd.Flags().Changed("para") {
			para := relay.ParaID(flagHeadPara)

			head, err := storages.Queues.Head(para)
			if errors.Is(err, storage.ErrNotFound) {
				log.Fatal().Msgf("no queue exists for para %v", para)
			}
			if err != nil {
				log.Fatal().Err(err).Msg("could not get chain head")
			}

			prettyPrint(head)
			return
		}

		paras, err := storages.Queues.Paras()
		if err != nil {
			log.Fatal().Err(err).Msg("could not list paras")
		}

		heads := make(map[string]relay.Hash, len(paras))
		for _, para := range paras {
			head, err := storages.Queues.Head(para)
			if err != nil {
				log.Fatal().Err(err).Msgf("could not get chain head of para %v", para)
			}
			heads[para.String()] = head
		}

		prettyPrint(heads)
	},
}
