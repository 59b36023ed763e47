// Package idcfg lets geometry and readout identifiers appear in YAML
// configuration, written the same way the identifiers print: a plane reads
// as {C: 0, T: 1, P: 2}.
//
// Each identifier type has a spec struct that decodes strictly (every index
// key required, unknown keys rejected) and produces a valid identifier via
// its ID method. Helpers cover the optional-ID and ID-sequence usage
// patterns.
package idcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/larnet/geoid/geo"
	"github.com/larnet/geoid/hier"
	"github.com/larnet/geoid/readout"
)

// decodeIndices reads a mapping node holding exactly the given single-letter
// keys, returning the index values in key order.
func decodeIndices(node *yaml.Node, kind string, keys ...string) ([]hier.Index, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("idcfg: %s spec must be a mapping", kind)
	}
	known := func(key string) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
	seen := make(map[string]hier.Index, len(keys))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !known(key) {
			return nil, fmt.Errorf("idcfg: unknown key %q in %s spec", key, kind)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("idcfg: duplicate key %q in %s spec", key, kind)
		}
		var value uint32
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("idcfg: key %q in %s spec: %w", key, kind, err)
		}
		seen[key] = hier.Index(value)
	}
	indices := make([]hier.Index, len(keys))
	for i, key := range keys {
		value, ok := seen[key]
		if !ok {
			return nil, fmt.Errorf("idcfg: missing key %q in %s spec", key, kind)
		}
		indices[i] = value
	}
	return indices, nil
}

// encodeIndices builds a flow-style mapping node with the keys in the order
// the identifier prints them.
func encodeIndices(keys []string, indices []hier.Index) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for i, key := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", indices[i])},
		)
	}
	return node
}

// CryostatSpec is the configuration form of a cryostat ID: {C: 0}.
type CryostatSpec struct{ id geo.CryostatID }

// ID returns the decoded identifier.
func (s CryostatSpec) ID() geo.CryostatID { return s.id }

func (s *CryostatSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "cryostat", "C")
	if err != nil {
		return err
	}
	s.id = geo.NewCryostatID(ix[0])
	return nil
}

func (s CryostatSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C"}, []hier.Index{s.id.Cryostat}), nil
}

// OpDetSpec is the configuration form of an optical detector ID: {C: 0, O: 1}.
type OpDetSpec struct{ id geo.OpDetID }

// ID returns the decoded identifier.
func (s OpDetSpec) ID() geo.OpDetID { return s.id }

func (s *OpDetSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "optical detector", "C", "O")
	if err != nil {
		return err
	}
	s.id = geo.NewOpDetID(ix[0], ix[1])
	return nil
}

func (s OpDetSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "O"}, []hier.Index{s.id.Cryostat, s.id.OpDet}), nil
}

// TPCSpec is the configuration form of a TPC ID: {C: 0, T: 1}.
type TPCSpec struct{ id geo.TPCID }

// ID returns the decoded identifier.
func (s TPCSpec) ID() geo.TPCID { return s.id }

func (s *TPCSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "TPC", "C", "T")
	if err != nil {
		return err
	}
	s.id = geo.NewTPCID(ix[0], ix[1])
	return nil
}

func (s TPCSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "T"}, []hier.Index{s.id.Cryostat, s.id.TPC}), nil
}

// PlaneSpec is the configuration form of a plane ID: {C: 0, T: 1, P: 2}.
type PlaneSpec struct{ id geo.PlaneID }

// ID returns the decoded identifier.
func (s PlaneSpec) ID() geo.PlaneID { return s.id }

func (s *PlaneSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "plane", "C", "T", "P")
	if err != nil {
		return err
	}
	s.id = geo.NewPlaneID(ix[0], ix[1], ix[2])
	return nil
}

func (s PlaneSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "T", "P"},
		[]hier.Index{s.id.Cryostat, s.id.TPC, s.id.Plane}), nil
}

// WireSpec is the configuration form of a wire ID: {C: 0, T: 1, P: 2, W: 3}.
type WireSpec struct{ id geo.WireID }

// ID returns the decoded identifier.
func (s WireSpec) ID() geo.WireID { return s.id }

func (s *WireSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "wire", "C", "T", "P", "W")
	if err != nil {
		return err
	}
	s.id = geo.NewWireID(ix[0], ix[1], ix[2], ix[3])
	return nil
}

func (s WireSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "T", "P", "W"},
		[]hier.Index{s.id.Cryostat, s.id.TPC, s.id.Plane, s.id.Wire}), nil
}

// TPCsetSpec is the configuration form of a TPC set ID: {C: 0, S: 1}.
type TPCsetSpec struct{ id readout.TPCsetID }

// ID returns the decoded identifier.
func (s TPCsetSpec) ID() readout.TPCsetID { return s.id }

func (s *TPCsetSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "TPC set", "C", "S")
	if err != nil {
		return err
	}
	s.id = readout.NewTPCsetID(ix[0], ix[1])
	return nil
}

func (s TPCsetSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "S"}, []hier.Index{s.id.Cryostat, s.id.TPCset}), nil
}

// ROPSpec is the configuration form of a readout plane ID: {C: 0, S: 1, R: 2}.
type ROPSpec struct{ id readout.ROPID }

// ID returns the decoded identifier.
func (s ROPSpec) ID() readout.ROPID { return s.id }

func (s *ROPSpec) UnmarshalYAML(node *yaml.Node) error {
	ix, err := decodeIndices(node, "readout plane", "C", "S", "R")
	if err != nil {
		return err
	}
	s.id = readout.NewROPID(ix[0], ix[1], ix[2])
	return nil
}

func (s ROPSpec) MarshalYAML() (any, error) {
	return encodeIndices([]string{"C", "S", "R"},
		[]hier.Index{s.id.Cryostat, s.id.TPCset, s.id.ROP}), nil
}

// isAbsent reports whether a node stands for "parameter not given".
func isAbsent(node *yaml.Node) bool {
	return node == nil || node.Kind == 0 || node.ShortTag() == "!!null"
}

// readOptional decodes an optional ID node: an absent or null node yields
// the provided invalid identifier and ok false.
func readOptional[S any, T any](node *yaml.Node, invalid T, id func(S) T) (T, bool, error) {
	if isAbsent(node) {
		return invalid, false, nil
	}
	var spec S
	if err := node.Decode(&spec); err != nil {
		return invalid, false, err
	}
	return id(spec), true, nil
}

// readSequence decodes a sequence of ID nodes; an absent node yields an
// empty slice.
func readSequence[S any, T any](node *yaml.Node, id func(S) T) ([]T, error) {
	if isAbsent(node) {
		return nil, nil
	}
	var specs []S
	if err := node.Decode(&specs); err != nil {
		return nil, err
	}
	ids := make([]T, len(specs))
	for i, spec := range specs {
		ids[i] = id(spec)
	}
	return ids, nil
}

// ReadOptionalCryostatID decodes an optional cryostat ID node.
func ReadOptionalCryostatID(node *yaml.Node) (geo.CryostatID, bool, error) {
	return readOptional(node, geo.InvalidCryostatID(), CryostatSpec.ID)
}

// ReadOptionalOpDetID decodes an optional optical detector ID node.
func ReadOptionalOpDetID(node *yaml.Node) (geo.OpDetID, bool, error) {
	return readOptional(node, geo.InvalidOpDetID(), OpDetSpec.ID)
}

// ReadOptionalTPCID decodes an optional TPC ID node.
func ReadOptionalTPCID(node *yaml.Node) (geo.TPCID, bool, error) {
	return readOptional(node, geo.InvalidTPCID(), TPCSpec.ID)
}

// ReadOptionalPlaneID decodes an optional plane ID node.
func ReadOptionalPlaneID(node *yaml.Node) (geo.PlaneID, bool, error) {
	return readOptional(node, geo.InvalidPlaneID(), PlaneSpec.ID)
}

// ReadOptionalWireID decodes an optional wire ID node.
func ReadOptionalWireID(node *yaml.Node) (geo.WireID, bool, error) {
	return readOptional(node, geo.InvalidWireID(), WireSpec.ID)
}

// ReadOptionalTPCsetID decodes an optional TPC set ID node.
func ReadOptionalTPCsetID(node *yaml.Node) (readout.TPCsetID, bool, error) {
	return readOptional(node, readout.InvalidTPCsetID(), TPCsetSpec.ID)
}

// ReadOptionalROPID decodes an optional readout plane ID node.
func ReadOptionalROPID(node *yaml.Node) (readout.ROPID, bool, error) {
	return readOptional(node, readout.InvalidROPID(), ROPSpec.ID)
}

// ReadCryostatIDSequence decodes a sequence of cryostat IDs.
func ReadCryostatIDSequence(node *yaml.Node) ([]geo.CryostatID, error) {
	return readSequence(node, CryostatSpec.ID)
}

// ReadOpDetIDSequence decodes a sequence of optical detector IDs.
func ReadOpDetIDSequence(node *yaml.Node) ([]geo.OpDetID, error) {
	return readSequence(node, OpDetSpec.ID)
}

// ReadTPCIDSequence decodes a sequence of TPC IDs.
func ReadTPCIDSequence(node *yaml.Node) ([]geo.TPCID, error) {
	return readSequence(node, TPCSpec.ID)
}

// ReadPlaneIDSequence decodes a sequence of plane IDs.
func ReadPlaneIDSequence(node *yaml.Node) ([]geo.PlaneID, error) {
	return readSequence(node, PlaneSpec.ID)
}

// ReadWireIDSequence decodes a sequence of wire IDs.
func ReadWireIDSequence(node *yaml.Node) ([]geo.WireID, error) {
	return readSequence(node, WireSpec.ID)
}

// ReadTPCsetIDSequence decodes a sequence of TPC set IDs.
func ReadTPCsetIDSequence(node *yaml.Node) ([]readout.TPCsetID, error) {
	return readSequence(node, TPCsetSpec.ID)
}

// ReadROPIDSequence decodes a sequence of readout plane IDs.
func ReadROPIDSequence(node *yaml.Node) ([]readout.ROPID, error) {
	return readSequence(node, ROPSpec.ID)
}
