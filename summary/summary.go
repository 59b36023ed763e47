// Package summary holds run-level bookkeeping records: which detector a run
// was taken with, how much beam it accumulated, and which geometry
// configuration produced it.
package summary

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultDetectorName is used when a run record does not name its detector.
const DefaultDetectorName = "nodetectorname"

// RunData stores run-related information.
type RunData struct {
	DetectorName string `yaml:"detector"`
}

// NewRunData returns run data for the named detector; an empty name falls
// back to DefaultDetectorName.
func NewRunData(detectorName string) RunData {
	if detectorName == "" {
		detectorName = DefaultDetectorName
	}
	return RunData{DetectorName: detectorName}
}

// POTSummary accumulates protons-on-target bookkeeping.
type POTSummary struct {
	TotPOT     float64 `yaml:"total_pot"`
	TotGoodPOT float64 `yaml:"total_good_pot"`
	TotSpills  int     `yaml:"total_spills"`
	GoodSpills int     `yaml:"good_spills"`
}

// Aggregate adds the content of another summary into this one.
func (p *POTSummary) Aggregate(other POTSummary) {
	p.TotPOT += other.TotPOT
	p.TotGoodPOT += other.TotGoodPOT
	p.TotSpills += other.TotSpills
	p.GoodSpills += other.GoodSpills
}

// AddSpill records one spill delivering pot protons on target; a good spill
// also counts towards the good totals.
func (p *POTSummary) AddSpill(pot float64, good bool) {
	p.TotPOT += pot
	p.TotSpills++
	if good {
		p.TotGoodPOT += pot
		p.GoodSpills++
	}
}

func (p POTSummary) String() string {
	return fmt.Sprintf("total POT: %g (%g good) in %d spills (%d good)",
		p.TotPOT, p.TotGoodPOT, p.TotSpills, p.GoodSpills)
}

// GeometryConfigurationInfo describes one geometry configuration snapshot.
// ConfigID distinguishes snapshots that would otherwise read identically.
type GeometryConfigurationInfo struct {
	Version       int       `yaml:"version"`
	DetectorName  string    `yaml:"detector"`
	ConfigID      uuid.UUID `yaml:"config_id"`
	Configuration string    `yaml:"configuration"`
}

// NewGeometryConfigurationInfo returns a version-1 snapshot with a freshly
// stamped ConfigID.
func NewGeometryConfigurationInfo(detectorName, configuration string) GeometryConfigurationInfo {
	return GeometryConfigurationInfo{
		Version:       1,
		DetectorName:  detectorName,
		ConfigID:      uuid.New(),
		Configuration: configuration,
	}
}

// Valid reports whether the snapshot carries any data.
func (info GeometryConfigurationInfo) Valid() bool { return info.Version > 0 }

func (info GeometryConfigurationInfo) String() string {
	if !info.Valid() {
		return "invalid geometry configuration information"
	}
	return fmt.Sprintf("geometry information version %d, detector %q (config %s)",
		info.Version, info.DetectorName, info.ConfigID)
}
