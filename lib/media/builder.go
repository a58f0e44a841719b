//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "sort"

// BuildTopology converts the four flat record arrays reported by the
// kernel into a cross-referenced Topology. Every foreign key is
// validated: a pad must belong to a present entity, a data link must
// connect two present pads, an interface link must connect a present
// interface to a present entity. Any dangling reference or duplicate
// id fails the whole build; callers never see a partially linked
// graph.
//
// The input slices are not retained or mutated.
func BuildTopology(version uint64, entities []RawEntity, interfaces []RawInterface, pads []RawPad, links []RawLink) (*Topology, error) {
	topo := &Topology{
		Version:    version,
		Entities:   make(EntityMap, len(entities)),
		Interfaces: make(InterfaceMap, len(interfaces)),
		Pads:       make(PadMap, len(pads)),
		Links:      make([]*Link, 0, len(links)),
	}

	for _, raw := range entities {
		if raw.ID == 0 {
			return nil, ErrInvalidTopology("entity with zero id")
		}
		if _, exists := topo.Entities[raw.ID]; exists {
			return nil, ErrInvalidTopology("duplicate entity id %d", raw.ID)
		}
		topo.Entities[raw.ID] = &Entity{
			ID:       raw.ID,
			Name:     raw.Name,
			Function: raw.Function,
			Flags:    raw.Flags,
		}
	}

	for _, raw := range interfaces {
		if _, exists := topo.Interfaces[raw.ID]; exists {
			return nil, ErrInvalidTopology("duplicate interface id %d", raw.ID)
		}
		topo.Interfaces[raw.ID] = &Interface{
			ID:      raw.ID,
			Type:    raw.Type,
			Flags:   raw.Flags,
			DevNode: raw.DevNode,
		}
	}

	for _, raw := range pads {
		if _, exists := topo.Pads[raw.ID]; exists {
			return nil, ErrInvalidTopology("duplicate pad id %d", raw.ID)
		}

		entity, found := topo.Entities[raw.EntityID]
		if !found {
			return nil, ErrInvalidTopology("pad %d references missing entity %d", raw.ID, raw.EntityID)
		}

		pad := &Pad{
			ID:       raw.ID,
			EntityID: raw.EntityID,
			Index:    raw.Index,
			Flags:    raw.Flags,
			Entity:   entity,
		}
		topo.Pads[raw.ID] = pad
		entity.Pads = append(entity.Pads, pad)
	}

	for _, entity := range topo.Entities {
		sort.Slice(entity.Pads, func(i, j int) bool {
			return entity.Pads[i].Index < entity.Pads[j].Index
		})
	}

	seenLinks := make(map[uint32]struct{}, len(links))
	for _, raw := range links {
		if _, exists := seenLinks[raw.ID]; exists {
			return nil, ErrInvalidTopology("duplicate link id %d", raw.ID)
		}
		seenLinks[raw.ID] = struct{}{}

		link, err := topo.resolveLink(raw)
		if err != nil {
			return nil, err
		}
		topo.Links = append(topo.Links, link)
	}

	return topo, nil
}

// resolveLink validates and wires one link record. The record's
// endpoint ids are interpreted according to the link kind decoded from
// its flags (see LinkFlags.Kind).
func (t *Topology) resolveLink(raw RawLink) (*Link, error) {
	link := &Link{
		ID:       raw.ID,
		SourceID: raw.SourceID,
		SinkID:   raw.SinkID,
		Flags:    raw.Flags,
	}

	switch raw.Flags.Kind() {
	case LinkKindData:
		source, found := t.Pads[raw.SourceID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing source pad %d", raw.ID, raw.SourceID)
		}
		sink, found := t.Pads[raw.SinkID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing sink pad %d", raw.ID, raw.SinkID)
		}

		link.Source = source
		link.Sink = sink
		source.Links = append(source.Links, link)
		sink.Links = append(sink.Links, link)

	case LinkKindInterface:
		intf, found := t.Interfaces[raw.SourceID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing interface %d", raw.ID, raw.SourceID)
		}
		entity, found := t.Entities[raw.SinkID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing entity %d", raw.ID, raw.SinkID)
		}

		link.Interface = intf
		link.Entity = entity
		if entity.Interface == nil {
			entity.Interface = intf
		}

	case LinkKindAncillary:
		primary, found := t.Entities[raw.SourceID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing primary entity %d", raw.ID, raw.SourceID)
		}
		ancillary, found := t.Entities[raw.SinkID]
		if !found {
			return nil, ErrInvalidTopology("link %d references missing ancillary entity %d", raw.ID, raw.SinkID)
		}

		link.Primary = primary
		link.Ancillary = ancillary

	default:
		return nil, ErrInvalidTopology("link %d has unrecognized type bits (flags 0x%08x)", raw.ID, uint32(raw.Flags))
	}

	return link, nil
}
