//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "fmt"

// MockRawEntity returns a synthetic entity record for testing.
func MockRawEntity(id uint32, fn EntityFunction) RawEntity {
	return RawEntity{
		ID:       id,
		Name:     fmt.Sprintf("mock-entity-%d", id),
		Function: fn,
	}
}

// MockRawInterface returns a synthetic V4L video interface record
// for testing.
func MockRawInterface(id uint32) RawInterface {
	return RawInterface{
		ID:   id,
		Type: InterfaceTypeV4LVideo,
		DevNode: DevNode{
			Major: 81,
			Minor: id,
		},
	}
}

// MockRawPad returns a synthetic pad record for testing.
func MockRawPad(id, entityID, index uint32, flags PadFlags) RawPad {
	return RawPad{
		ID:       id,
		EntityID: entityID,
		Flags:    flags,
		Index:    index,
	}
}

// MockRawLink returns a synthetic pad-to-pad link record for testing.
func MockRawLink(id, sourceID, sinkID uint32, flags LinkFlags) RawLink {
	return RawLink{
		ID:       id,
		SourceID: sourceID,
		SinkID:   sinkID,
		Flags:    flags,
	}
}

// MockRawInterfaceLink returns a synthetic interface-to-entity link
// record for testing.
func MockRawInterfaceLink(id, intfID, entityID uint32) RawLink {
	return RawLink{
		ID:       id,
		SourceID: intfID,
		SinkID:   entityID,
		Flags:    linkTypeInterface | LinkFlagEnabled | LinkFlagImmutable,
	}
}

// MockRawAncillaryLink returns a synthetic ancillary link record for
// testing.
func MockRawAncillaryLink(id, primaryID, ancillaryID uint32) RawLink {
	return RawLink{
		ID:       id,
		SourceID: primaryID,
		SinkID:   ancillaryID,
		Flags:    linkTypeAncillary | LinkFlagEnabled | LinkFlagImmutable,
	}
}

// MockSensorPipeline returns the raw records for a small synthetic
// pipeline: a sensor entity linked to a video I/O entity exposed
// through a V4L interface.
func MockSensorPipeline() (uint64, []RawEntity, []RawInterface, []RawPad, []RawLink) {
	entities := []RawEntity{
		MockRawEntity(1, FunctionCamSensor),
		MockRawEntity(2, FunctionIOV4L),
	}
	interfaces := []RawInterface{
		MockRawInterface(20),
	}
	pads := []RawPad{
		MockRawPad(10, 1, 0, PadFlagSource),
		MockRawPad(11, 2, 0, PadFlagSink),
	}
	links := []RawLink{
		MockRawLink(30, 10, 11, LinkFlagEnabled),
		MockRawInterfaceLink(31, 20, 2),
	}

	return 1, entities, interfaces, pads, links
}
