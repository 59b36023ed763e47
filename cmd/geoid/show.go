package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/larnet/geoid/geo"
	"github.com/larnet/geoid/hier"
	"github.com/larnet/geoid/readout"
)

// newShowCommand builds an identifier from flattened indices and prints its
// canonical form. The number of indices selects the depth; flags pick the
// branch where depth alone is ambiguous.
func (c *cli) newShowCommand() *cobra.Command {
	var useReadout bool
	var useOpDet bool

	cmd := &cobra.Command{
		Use:   "show INDEX...",
		Short: "Print the canonical form of an identifier",
		Long: `Build an identifier from its flattened indices, root first, and print it.

One index names a cryostat, two a TPC (an optical detector with --opdet, a
TPC set with --readout), three a plane (a readout plane with --readout),
four a wire.`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parseIndices(args)
			if err != nil {
				return err
			}
			id, err := buildID(indices, useReadout, useOpDet)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useReadout, "readout", false, "interpret the indices in the readout hierarchy")
	cmd.Flags().BoolVar(&useOpDet, "opdet", false, "interpret two indices as an optical detector")
	return cmd
}

func parseIndices(args []string) ([]hier.Index, error) {
	indices := make([]hier.Index, len(args))
	for i, arg := range args {
		value, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("index %q is not an unsigned integer", arg)
		}
		indices[i] = hier.Index(value)
	}
	return indices, nil
}

func buildID(ix []hier.Index, useReadout, useOpDet bool) (hier.ID, error) {
	if useReadout && useOpDet {
		return nil, fmt.Errorf("--readout and --opdet are mutually exclusive")
	}
	switch {
	case useReadout:
		switch len(ix) {
		case 1:
			return geo.NewCryostatID(ix[0]), nil
		case 2:
			return readout.NewTPCsetID(ix[0], ix[1]), nil
		case 3:
			return readout.NewROPID(ix[0], ix[1], ix[2]), nil
		}
		return nil, fmt.Errorf("the readout hierarchy has at most 3 levels, got %d indices", len(ix))
	case useOpDet:
		if len(ix) != 2 {
			return nil, fmt.Errorf("an optical detector takes exactly 2 indices, got %d", len(ix))
		}
		return geo.NewOpDetID(ix[0], ix[1]), nil
	default:
		switch len(ix) {
		case 1:
			return geo.NewCryostatID(ix[0]), nil
		case 2:
			return geo.NewTPCID(ix[0], ix[1]), nil
		case 3:
			return geo.NewPlaneID(ix[0], ix[1], ix[2]), nil
		case 4:
			return geo.NewWireID(ix[0], ix[1], ix[2], ix[3]), nil
		}
	}
	return nil, fmt.Errorf("got %d indices", len(ix))
}
