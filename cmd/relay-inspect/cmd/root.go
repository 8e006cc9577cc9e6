package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onrelay/relay-go/module/metrics"
	bstorage "github.com/onrelay/relay-go/storage/badger"
)

var flagDatadir string

var rootCmd = &cobra.Command{
	Use:   "relay-inspect",
	Short: "read downward queue state from a relay database",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDatadir, "datadir", "d", "/var/relay/data", "directory of the badger database")
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Storages bundles the stores opened on the database under inspection.
type Storages struct {
	DB       *badger.DB
	Queues   *bstorage.Queues
	Outgoing *bstorage.OutgoingParas
}

func InitStorages() *Storages {
	db := initBadger()
	return &Storages{
		DB:       db,
		Queues:   bstorage.NewQueues(metrics.NewNoopCollector(), db),
		Outgoing: bstorage.NewOutgoingParas(db),
	}
}

func initBadger() *badger.DB {
	opts := badger.
		DefaultOptions(flagDatadir).
		WithKeepL0InMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open key-value store")
	}
	return db
}

func prettyPrint(entity interface{}) {
	bytes, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("could not marshal entity")
	}
	fmt.Println(string(bytes))
}
