// Package layout describes how many elements a detector has at each level of
// the geometry and readout hierarchies, and enumerates their identifiers in
// canonical order.
package layout

import (
	"bytes"
	"fmt"
	"iter"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/larnet/geoid/geo"
	"github.com/larnet/geoid/hier"
	"github.com/larnet/geoid/readout"
)

// Detector is the per-level element count description of a detector. The
// counts are uniform: every cryostat holds the same number of TPCs, every
// TPC the same number of planes, and so on.
type Detector struct {
	Name               string `yaml:"name"`
	Cryostats          int    `yaml:"cryostats"`
	TPCsPerCryostat    int    `yaml:"tpcs_per_cryostat"`
	PlanesPerTPC       int    `yaml:"planes_per_tpc"`
	WiresPerPlane      int    `yaml:"wires_per_plane"`
	OpDetsPerCryostat  int    `yaml:"opdets_per_cryostat"`
	TPCsetsPerCryostat int    `yaml:"tpcsets_per_cryostat"`
	ROPsPerTPCset      int    `yaml:"rops_per_tpcset"`
}

// Decode parses a detector description from YAML, rejecting unknown fields,
// and validates it.
func Decode(data []byte) (Detector, error) {
	var det Detector
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&det); err != nil {
		return Detector{}, fmt.Errorf("layout: decoding detector description: %w", err)
	}
	if err := det.Validate(); err != nil {
		return Detector{}, err
	}
	return det, nil
}

// Load reads and decodes a detector description file.
func Load(path string) (Detector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Detector{}, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	det, err := Decode(data)
	if err != nil {
		return Detector{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	return det, nil
}

// Validate checks that every element count is positive and the detector is
// named.
func (d Detector) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("layout: detector has no name")
	}
	counts := []struct {
		name  string
		value int
	}{
		{"cryostats", d.Cryostats},
		{"tpcs_per_cryostat", d.TPCsPerCryostat},
		{"planes_per_tpc", d.PlanesPerTPC},
		{"wires_per_plane", d.WiresPerPlane},
		{"opdets_per_cryostat", d.OpDetsPerCryostat},
		{"tpcsets_per_cryostat", d.TPCsetsPerCryostat},
		{"rops_per_tpcset", d.ROPsPerTPCset},
	}
	for _, c := range counts {
		if c.value <= 0 {
			return fmt.Errorf("layout: %s must be positive, got %d", c.name, c.value)
		}
	}
	return nil
}

// NCryostats returns the number of cryostats.
func (d Detector) NCryostats() int { return d.Cryostats }

// NOpDets returns the total number of optical detectors.
func (d Detector) NOpDets() int { return d.Cryostats * d.OpDetsPerCryostat }

// NTPCs returns the total number of TPCs.
func (d Detector) NTPCs() int { return d.Cryostats * d.TPCsPerCryostat }

// NPlanes returns the total number of wire planes.
func (d Detector) NPlanes() int { return d.NTPCs() * d.PlanesPerTPC }

// NWires returns the total number of wires.
func (d Detector) NWires() int { return d.NPlanes() * d.WiresPerPlane }

// NTPCsets returns the total number of TPC sets.
func (d Detector) NTPCsets() int { return d.Cryostats * d.TPCsetsPerCryostat }

// NROPs returns the total number of readout planes.
func (d Detector) NROPs() int { return d.NTPCsets() * d.ROPsPerTPCset }

// CryostatIDs enumerates the cryostat IDs in increasing order.
func (d Detector) CryostatIDs() iter.Seq[geo.CryostatID] {
	return func(yield func(geo.CryostatID) bool) {
		for c := 0; c < d.Cryostats; c++ {
			if !yield(geo.NewCryostatID(hier.Index(c))) {
				return
			}
		}
	}
}

// OpDetIDs enumerates the optical detector IDs in increasing order.
func (d Detector) OpDetIDs() iter.Seq[geo.OpDetID] {
	return func(yield func(geo.OpDetID) bool) {
		for cryo := range d.CryostatIDs() {
			for o := 0; o < d.OpDetsPerCryostat; o++ {
				if !yield(geo.OpDetIDIn(cryo, hier.Index(o))) {
					return
				}
			}
		}
	}
}

// TPCIDs enumerates the TPC IDs in increasing order.
func (d Detector) TPCIDs() iter.Seq[geo.TPCID] {
	return func(yield func(geo.TPCID) bool) {
		for cryo := range d.CryostatIDs() {
			for t := 0; t < d.TPCsPerCryostat; t++ {
				if !yield(geo.TPCIDIn(cryo, hier.Index(t))) {
					return
				}
			}
		}
	}
}

// PlaneIDs enumerates the plane IDs in increasing order.
func (d Detector) PlaneIDs() iter.Seq[geo.PlaneID] {
	return func(yield func(geo.PlaneID) bool) {
		for tpc := range d.TPCIDs() {
			for p := 0; p < d.PlanesPerTPC; p++ {
				if !yield(geo.PlaneIDIn(tpc, hier.Index(p))) {
					return
				}
			}
		}
	}
}

// WireIDs enumerates the wire IDs in increasing order. The iteration starts
// at the first wire and advances by rewriting one index level at a time,
// carrying into the level above on rollover.
func (d Detector) WireIDs() iter.Seq[geo.WireID] {
	return func(yield func(geo.WireID) bool) {
		id := geo.FirstWireID()
		for {
			if !yield(id) {
				return
			}
			if !d.nextWire(&id) {
				return
			}
		}
	}
}

// nextWire advances id to the next wire in Cmp order, returning false after
// the last wire of the detector.
func (d Detector) nextWire(id *geo.WireID) bool {
	sizes := [...]int{d.Cryostats, d.TPCsPerCryostat, d.PlanesPerTPC, d.WiresPerPlane}
	for level := geo.WireLevel; level >= geo.CryostatLevel; level-- {
		next := id.IndexAt(level) + 1
		if int(next) < sizes[level] {
			id.SetIndexAt(level, next)
			return true
		}
		id.SetIndexAt(level, 0)
	}
	return false
}

// TPCsetIDs enumerates the TPC set IDs in increasing order.
func (d Detector) TPCsetIDs() iter.Seq[readout.TPCsetID] {
	return func(yield func(readout.TPCsetID) bool) {
		for cryo := range d.CryostatIDs() {
			for s := 0; s < d.TPCsetsPerCryostat; s++ {
				if !yield(readout.TPCsetIDIn(cryo, hier.Index(s))) {
					return
				}
			}
		}
	}
}

// ROPIDs enumerates the readout plane IDs in increasing order.
func (d Detector) ROPIDs() iter.Seq[readout.ROPID] {
	return func(yield func(readout.ROPID) bool) {
		for set := range d.TPCsetIDs() {
			for r := 0; r < d.ROPsPerTPCset; r++ {
				if !yield(readout.ROPIDIn(set, hier.Index(r))) {
					return
				}
			}
		}
	}
}
