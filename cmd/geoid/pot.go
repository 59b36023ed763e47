package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larnet/geoid/summary"
)

// newPotCommand folds a partial protons-on-target summary into a shared
// summary file.
func (c *cli) newPotCommand() *cobra.Command {
	var (
		file       string
		detector   string
		pot        float64
		goodPot    float64
		spills     int
		goodSpills int
	)

	cmd := &cobra.Command{
		Use:   "pot",
		Short: "Accumulate protons-on-target totals into a summary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = c.viper.GetString("summary_file")
			}
			if file == "" {
				return fmt.Errorf("no summary file: pass --file or set \"summary_file\" in the config file")
			}
			if detector == "" {
				detector = c.viper.GetString("detector")
			}

			store := summary.NewStore(file)
			rec, err := store.Accumulate(cmd.Context(), summary.NewRunData(detector), summary.POTSummary{
				TotPOT:     pot,
				TotGoodPOT: goodPot,
				TotSpills:  spills,
				GoodSpills: goodSpills,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rec.Run.DetectorName, rec.POT)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "summary file to accumulate into")
	cmd.Flags().StringVar(&detector, "detector", "", "detector name recorded with the summary")
	cmd.Flags().Float64Var(&pot, "pot", 0, "protons on target delivered")
	cmd.Flags().Float64Var(&goodPot, "good-pot", 0, "protons on target delivered in good spills")
	cmd.Flags().IntVar(&spills, "spills", 0, "number of spills")
	cmd.Flags().IntVar(&goodSpills, "good-spills", 0, "number of good spills")
	return cmd
}
