package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onrelay/relay-go/model/encoding/cbor"
	"github.com/onrelay/relay-go/model/relay"
)

var flagOutput string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"the file to write the snapshot to")
	_ = exportCmd.MarkFlagRequired("output")
}

// QueueSnapshot is the exported state of a single para's queue.
type QueueSnapshot struct {
	Para     relay.ParaID
	Head     relay.Hash
	Messages []*relay.InboundMessage
}

// StateSnapshot is the exported state of all downward queues.
type StateSnapshot struct {
	Queues   []QueueSnapshot
	Outgoing relay.ParaIDList
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "export all queue state as a CBOR snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		storages := InitStorages()
		defer storages.DB.Close()

		paras, err := storages.Queues.Paras()
		if err != nil {
			log.Fatal().Err(err).Msg("could not list paras")
		}

		snapshot := StateSnapshot{
			Queues: make([]QueueSnapshot, 0, len(paras)),
		}
		for _, para := range paras {
			head, err := storages.Queues.Head(para)
			if err != nil {
				log.Fatal().Err(err).Msgf("could not get chain head of para %v", para)
			}
			messages, err := storages.Queues.Contents(para)
			if err != nil {
				log.Fatal().Err(err).Msgf("could not get queue contents of para %v", para)
			}
			snapshot.Queues = append(snapshot.Queues, QueueSnapshot{
				Para:     para,
				Head:     head,
				Messages: messages,
			})
		}

		snapshot.Outgoing, err = storages.Outgoing.Peek()
		if err != nil {
			log.Fatal().Err(err).Msg("could not get outgoing paras")
		}

		data, err := cbor.NewMarshaler().Marshal(snapshot)
		if err != nil {
			log.Fatal().Err(err).Msg("could not encode snapshot")
		}

		err = os.WriteFile(flagOutput, data, 0644)
		if err != nil {
			log.Fatal().Err(err).Msg("could not write snapshot file")
		}

		log.Info().
			Int("paras", len(snapshot.Queues)).
			Str("output", flagOutput).
			Msg("snapshot exported")
	},
}
