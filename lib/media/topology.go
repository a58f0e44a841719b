//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import (
	"context"
	"sort"
)

type (
	// TopologyProvider is an interface for acquiring a media device
	// topology.
	TopologyProvider interface {
		GetTopology(ctx context.Context, path string) (*Topology, error)
	}

	// DeviceInfoProvider is an interface for querying media device
	// identification.
	DeviceInfoProvider interface {
		GetDeviceInfo(ctx context.Context, path string) (*DeviceInfo, error)
	}
)

type (
	// RawEntity is a decoded but unvalidated entity record as
	// reported by the kernel.
	RawEntity struct {
		ID       uint32
		Name     string
		Function EntityFunction
		Flags    EntityFlags
	}

	// RawInterface is a decoded but unvalidated interface record.
	RawInterface struct {
		ID      uint32
		Type    InterfaceType
		Flags   uint32
		DevNode DevNode
	}

	// RawPad is a decoded but unvalidated pad record.
	RawPad struct {
		ID       uint32
		EntityID uint32
		Flags    PadFlags
		Index    uint32
	}

	// RawLink is a decoded but unvalidated link record. The meaning
	// of SourceID/SinkID depends on the link kind encoded in Flags:
	// pad ids for data links, interface/entity ids for interface
	// links, entity ids for ancillary links.
	RawLink struct {
		ID       uint32
		SourceID uint32
		SinkID   uint32
		Flags    LinkFlags
	}
)

type (
	// Entity is a node in the topology graph: a hardware block,
	// processing unit, or device node.
	Entity struct {
		ID       uint32         `json:"id"`
		Name     string         `json:"name"`
		Function EntityFunction `json:"function"`
		Flags    EntityFlags    `json:"flags"`

		// Pads is sorted by pad index.
		Pads []*Pad `json:"pads"`

		// Interface is the interface exposing this entity to user
		// space, if any.
		Interface *Interface `json:"interface,omitempty"`
	}

	// Interface maps a device node to the entity it exposes.
	Interface struct {
		ID      uint32        `json:"id"`
		Type    InterfaceType `json:"intf_type"`
		Flags   uint32        `json:"flags"`
		DevNode DevNode       `json:"devnode"`
	}

	// Pad is a directional connection point on an entity.
	Pad struct {
		ID       uint32   `json:"id"`
		EntityID uint32   `json:"entity_id"`
		Index    uint32   `json:"index"`
		Flags    PadFlags `json:"flags"`

		Entity *Entity `json:"-"`
		Links  []*Link `json:"-"`
	}

	// Link is an edge in the topology graph. Exactly one of the
	// resolved endpoint pairs is populated, according to Kind().
	Link struct {
		ID       uint32    `json:"id"`
		SourceID uint32    `json:"source_id"`
		SinkID   uint32    `json:"sink_id"`
		Flags    LinkFlags `json:"flags"`

		// Data link endpoints.
		Source *Pad `json:"-"`
		Sink   *Pad `json:"-"`

		// Interface link endpoints.
		Interface *Interface `json:"-"`
		Entity    *Entity    `json:"-"`

		// Ancillary link endpoints.
		Primary   *Entity `json:"-"`
		Ancillary *Entity `json:"-"`
	}

	// EntityMap maps an entity id to an entity.
	EntityMap map[uint32]*Entity

	// InterfaceMap maps an interface id to an interface.
	InterfaceMap map[uint32]*Interface

	// PadMap maps a pad id to a pad.
	PadMap map[uint32]*Pad
)

// Kind returns the kind of the link.
func (l *Link) Kind() LinkKind {
	if l == nil {
		return LinkKindUnknown
	}
	return l.Flags.Kind()
}

// IsEnabled returns true if data can flow over the link.
func (l *Link) IsEnabled() bool {
	return l != nil && l.Flags&LinkFlagEnabled != 0
}

// IsSource returns true if the pad produces data.
func (p *Pad) IsSource() bool {
	return p != nil && p.Flags&PadFlagSource != 0
}

// IsSink returns true if the pad consumes data.
func (p *Pad) IsSink() bool {
	return p != nil && p.Flags&PadFlagSink != 0
}

// PadByIndex returns the entity's pad with the given index, or nil.
func (e *Entity) PadByIndex(index uint32) *Pad {
	if e == nil {
		return nil
	}
	for _, pad := range e.Pads {
		if pad.Index == index {
			return pad
		}
	}
	return nil
}

// AsSlice returns the entity map as a slice sorted by entity id.
func (em EntityMap) AsSlice() []*Entity {
	entities := make([]*Entity, 0, len(em))

	for _, entity := range em {
		entities = append(entities, entity)
	}

	sort.Slice(entities, func(i, j int) bool {
		return entities[i].ID < entities[j].ID
	})

	return entities
}

// AsSlice returns the interface map as a slice sorted by interface id.
func (im InterfaceMap) AsSlice() []*Interface {
	interfaces := make([]*Interface, 0, len(im))

	for _, intf := range im {
		interfaces = append(interfaces, intf)
	}

	sort.Slice(interfaces, func(i, j int) bool {
		return interfaces[i].ID < interfaces[j].ID
	})

	return interfaces
}

// AsSlice returns the pad map as a slice sorted by pad id.
func (pm PadMap) AsSlice() []*Pad {
	pads := make([]*Pad, 0, len(pm))

	for _, pad := range pm {
		pads = append(pads, pad)
	}

	sort.Slice(pads, func(i, j int) bool {
		return pads[i].ID < pads[j].ID
	})

	return pads
}

// Topology is an immutable snapshot of a media device's routing graph.
// All cross-references are resolved and validated at construction; a
// fresh kernel query builds a fresh Topology from scratch.
type Topology struct {
	// Version is the kernel's topology sequence counter at the time
	// the snapshot was taken.
	Version uint64 `json:"topology_version"`

	Entities   EntityMap    `json:"entities"`
	Interfaces InterfaceMap `json:"interfaces"`
	Pads       PadMap       `json:"-"`
	Links      []*Link      `json:"links"`
}

// Entity returns the entity with the given id, or nil.
func (t *Topology) Entity(id uint32) *Entity {
	if t == nil {
		return nil
	}
	return t.Entities[id]
}

// Interface returns the interface with the given id, or nil.
func (t *Topology) Interface(id uint32) *Interface {
	if t == nil {
		return nil
	}
	return t.Interfaces[id]
}

// Pad returns the pad with the given id, or nil.
func (t *Topology) Pad(id uint32) *Pad {
	if t == nil {
		return nil
	}
	return t.Pads[id]
}

// NumEntities returns the number of entities in the topology.
func (t *Topology) NumEntities() int {
	if t == nil {
		return 0
	}
	return len(t.Entities)
}

// NumInterfaces returns the number of interfaces in the topology.
func (t *Topology) NumInterfaces() int {
	if t == nil {
		return 0
	}
	return len(t.Interfaces)
}

// NumPads returns the number of pads in the topology.
func (t *Topology) NumPads() int {
	if t == nil {
		return 0
	}
	return len(t.Pads)
}

// NumLinks returns the number of links in the topology.
func (t *Topology) NumLinks() int {
	if t == nil {
		return 0
	}
	return len(t.Links)
}

// EntitiesByFunction returns the entities with the given function
// code, sorted by id.
func (t *Topology) EntitiesByFunction(fn EntityFunction) []*Entity {
	var entities []*Entity
	if t == nil {
		return entities
	}

	for _, entity := range t.Entities.AsSlice() {
		if entity.Function == fn {
			entities = append(entities, entity)
		}
	}

	return entities
}

// DataLinks returns the pad-to-pad links, sorted by id.
func (t *Topology) DataLinks() []*Link {
	return t.linksOfKind(LinkKindData)
}

// InterfaceLinks returns the interface-to-entity links, sorted by id.
func (t *Topology) InterfaceLinks() []*Link {
	return t.linksOfKind(LinkKindInterface)
}

func (t *Topology) linksOfKind(kind LinkKind) []*Link {
	var links []*Link
	if t == nil {
		return links
	}

	for _, link := range t.Links {
		if link.Kind() == kind {
			links = append(links, link)
		}
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].ID < links[j].ID
	})

	return links
}
