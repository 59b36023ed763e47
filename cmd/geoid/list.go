package main

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/larnet/geoid/hier"
	"github.com/larnet/geoid/layout"
)

// newListCommand enumerates the identifiers of one element kind for the
// configured detector layout.
func (c *cli) newListCommand() *cobra.Command {
	var layoutPath string
	var limit int

	cmd := &cobra.Command{
		Use:       "list KIND",
		Short:     "Enumerate identifiers of the configured detector",
		ValidArgs: []string{"cryostats", "opdets", "tpcs", "planes", "wires", "tpcsets", "rops"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := layoutPath
			if path == "" {
				path = c.viper.GetString("layout")
			}
			if path == "" {
				return fmt.Errorf("no detector layout: pass --layout or set \"layout\" in the config file")
			}
			det, err := layout.Load(path)
			if err != nil {
				return err
			}

			printed := 0
			print := func(id hier.ID) bool {
				if limit > 0 && printed >= limit {
					return false
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				printed++
				return true
			}
			forEach(det, args[0], print)
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "detector layout description file")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many identifiers (0 = all)")
	return cmd
}

// forEach feeds every identifier of the requested kind to print, stopping
// early when print returns false.
func forEach(det layout.Detector, kind string, print func(hier.ID) bool) {
	switch kind {
	case "cryostats":
		each(det.CryostatIDs(), print)
	case "opdets":
		each(det.OpDetIDs(), print)
	case "tpcs":
		each(det.TPCIDs(), print)
	case "planes":
		each(det.PlaneIDs(), print)
	case "wires":
		each(det.WireIDs(), print)
	case "tpcsets":
		each(det.TPCsetIDs(), print)
	case "rops":
		each(det.ROPIDs(), print)
	}
}

func each[T hier.ID](seq iter.Seq[T], print func(hier.ID) bool) {
	for id := range seq {
		if !print(id) {
			return
		}
	}
}
