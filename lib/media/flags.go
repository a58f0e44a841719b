//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "strings"

// EntityFlags is the bitset of MEDIA_ENT_FL_* flags on an entity.
type EntityFlags uint32

const (
	// EntityFlagDefault marks the default entity for its type within
	// the graph.
	EntityFlagDefault EntityFlags = 1 << 0
	// EntityFlagConnector marks the entity as a connector.
	EntityFlagConnector EntityFlags = 1 << 1
)

func (f EntityFlags) String() string {
	var parts []string
	if f&EntityFlagDefault != 0 {
		parts = append(parts, "DEFAULT")
	}
	if f&EntityFlagConnector != 0 {
		parts = append(parts, "CONNECTOR")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "|")
}

// PadFlags is the bitset of MEDIA_PAD_FL_* flags on a pad.
type PadFlags uint32

const (
	// PadFlagSink indicates the pad consumes data.
	PadFlagSink PadFlags = 1 << 0
	// PadFlagSource indicates the pad produces data.
	PadFlagSource PadFlags = 1 << 1
	// PadFlagMustConnect indicates the pad requires an active link
	// for the entity to stream.
	PadFlagMustConnect PadFlags = 1 << 2
)

func (f PadFlags) String() string {
	var parts []string
	if f&PadFlagSink != 0 {
		parts = append(parts, "SINK")
	}
	if f&PadFlagSource != 0 {
		parts = append(parts, "SOURCE")
	}
	if f&PadFlagMustConnect != 0 {
		parts = append(parts, "MUST_CONNECT")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "|")
}

// LinkFlags is the bitset of MEDIA_LNK_FL_* flags on a link. The top
// four bits encode the link kind rather than independent flags.
type LinkFlags uint32

const (
	// LinkFlagEnabled indicates the link is active and data can
	// flow over it.
	LinkFlagEnabled LinkFlags = 1 << 0
	// LinkFlagImmutable indicates the link's enabled state cannot
	// be changed at runtime.
	LinkFlagImmutable LinkFlags = 1 << 1
	// LinkFlagDynamic indicates the link's enabled state can change
	// while streaming.
	LinkFlagDynamic LinkFlags = 1 << 2

	linkTypeMask      LinkFlags = 0xf << 28
	linkTypeData      LinkFlags = 0 << 28
	linkTypeInterface LinkFlags = 1 << 28
	linkTypeAncillary LinkFlags = 2 << 28
)

// LinkKind discriminates the three kinds of link records the kernel
// reports through the same flat array.
type LinkKind int

const (
	// LinkKindUnknown is reported for link type bits this library
	// does not recognize.
	LinkKindUnknown LinkKind = iota
	// LinkKindData connects a source pad to a sink pad.
	LinkKindData
	// LinkKindInterface connects an interface to the entity it exposes.
	LinkKindInterface
	// LinkKindAncillary connects a primary entity to a closely
	// coupled ancillary entity (e.g. a sensor and its lens controller).
	LinkKindAncillary
)

func (k LinkKind) String() string {
	switch k {
	case LinkKindData:
		return "data"
	case LinkKindInterface:
		return "interface"
	case LinkKindAncillary:
		return "ancillary"
	}
	return "unknown"
}

// Kind decodes the link kind from the flag bits. This is the single
// place the kernel's link-type convention is interpreted; kernel ABI
// drift on link typing should be absorbed here.
func (f LinkFlags) Kind() LinkKind {
	switch f & linkTypeMask {
	case linkTypeData:
		return LinkKindData
	case linkTypeInterface:
		return LinkKindInterface
	case linkTypeAncillary:
		return LinkKindAncillary
	}
	return LinkKindUnknown
}

func (f LinkFlags) String() string {
	var parts []string
	if f&LinkFlagEnabled != 0 {
		parts = append(parts, "ENABLED")
	}
	if f&LinkFlagImmutable != 0 {
		parts = append(parts, "IMMUTABLE")
	}
	if f&LinkFlagDynamic != 0 {
		parts = append(parts, "DYNAMIC")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "|")
}
