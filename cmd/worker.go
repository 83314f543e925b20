package cmd

import (
	"liquidator/worker"
	"liquidator/worker/scanner"
	"sync"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "scan and persist liquidatable positions on a schedule",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		liquidationStore := provideLiquidationStore(database)

		workers := []worker.Worker{
			scanner.New(scanner.Config{
				Spec:     cfg.Worker.Spec,
				Location: cfg.App.Location,
			}, provideScanner(nil), liquidationStore),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				if err := worker.Run(ctx); err != nil {
					log.WithError(err).Errorln("worker aborted")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
