package cmd

import (
	"encoding/json"

	"liquidator/core"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "scan liquidatable positions once and print them",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		items, err := provideScanner(nil).Liquidatable(ctx)
		if err != nil {
			cmd.PrintErrln("scan liquidatable positions:", err)
			return
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			database := provideDatabase()
			defer database.Close()

			if err := provideLiquidationStore(database).UpsertAll(ctx, core.NewLiquidations(items)); err != nil {
				cmd.PrintErrln("upsert liquidations:", err)
				return
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		_ = enc.Encode(items)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("save", false, "upsert the result into the database")
}
