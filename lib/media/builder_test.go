//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/common"
)

func TestMedia_BuildTopology_ValidPipeline(t *testing.T) {
	version, entities, interfaces, pads, links := MockSensorPipeline()

	topo, err := BuildTopology(version, entities, interfaces, pads, links)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, version, topo.Version, "version")
	common.AssertEqual(t, len(entities), topo.NumEntities(), "entity count")
	common.AssertEqual(t, len(interfaces), topo.NumInterfaces(), "interface count")
	common.AssertEqual(t, len(pads), topo.NumPads(), "pad count")
	common.AssertEqual(t, len(links), topo.NumLinks(), "link count")

	sensor := topo.Entity(1)
	if sensor == nil {
		t.Fatal("missing sensor entity")
	}
	common.AssertEqual(t, 1, len(sensor.Pads), "sensor pad count")
	common.AssertTrue(t, sensor.Pads[0].IsSource(), "sensor pad should be a source")
	common.AssertTrue(t, sensor.Pads[0].Entity == sensor, "pad back-reference")

	capture := topo.Entity(2)
	if capture == nil {
		t.Fatal("missing capture entity")
	}
	if capture.Interface == nil {
		t.Fatal("capture entity should have an interface")
	}
	common.AssertEqual(t, uint32(20), capture.Interface.ID, "interface id")

	dataLinks := topo.DataLinks()
	common.AssertEqual(t, 1, len(dataLinks), "data link count")
	common.AssertTrue(t, dataLinks[0].Source == topo.Pad(10), "link source pad")
	common.AssertTrue(t, dataLinks[0].Sink == topo.Pad(11), "link sink pad")
	common.AssertTrue(t, dataLinks[0].IsEnabled(), "link should be enabled")

	intfLinks := topo.InterfaceLinks()
	common.AssertEqual(t, 1, len(intfLinks), "interface link count")
	common.AssertTrue(t, intfLinks[0].Interface == topo.Interface(20), "interface link interface")
	common.AssertTrue(t, intfLinks[0].Entity == capture, "interface link entity")
}

func TestMedia_BuildTopology_TwoEntityPipeline(t *testing.T) {
	entities := []RawEntity{
		{ID: 10, Name: "sensor", Function: FunctionCamSensor},
		{ID: 11, Name: "capture", Function: FunctionIOV4L},
	}
	pads := []RawPad{
		{ID: 100, EntityID: 10, Index: 0, Flags: PadFlagSource},
		{ID: 101, EntityID: 11, Index: 0, Flags: PadFlagSink},
	}
	links := []RawLink{
		{ID: 200, SourceID: 100, SinkID: 101, Flags: LinkFlagEnabled},
	}

	topo, err := BuildTopology(7, entities, nil, pads, links)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, 2, topo.NumEntities(), "entity count")
	common.AssertEqual(t, uint32(10), topo.Pad(100).EntityID, "pad 100 owner")
	common.AssertEqual(t, uint32(11), topo.Pad(101).EntityID, "pad 101 owner")

	link := topo.Links[0]
	common.AssertTrue(t, link.Source == topo.Pad(100), "link source")
	common.AssertTrue(t, link.Sink == topo.Pad(101), "link sink")
	common.AssertTrue(t, link.IsEnabled(), "link enabled flag")
}

func TestMedia_BuildTopology_Empty(t *testing.T) {
	topo, err := BuildTopology(3, nil, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, uint64(3), topo.Version, "version")
	common.AssertEqual(t, 0, topo.NumEntities(), "entity count")
	common.AssertEqual(t, 0, topo.NumInterfaces(), "interface count")
	common.AssertEqual(t, 0, topo.NumPads(), "pad count")
	common.AssertEqual(t, 0, topo.NumLinks(), "link count")
}

func TestMedia_BuildTopology_PadsSortedByIndex(t *testing.T) {
	entities := []RawEntity{
		{ID: 1, Name: "proc", Function: FunctionProcVideoScaler},
	}
	pads := []RawPad{
		{ID: 12, EntityID: 1, Index: 2, Flags: PadFlagSource},
		{ID: 10, EntityID: 1, Index: 0, Flags: PadFlagSink},
		{ID: 11, EntityID: 1, Index: 1, Flags: PadFlagSource},
	}

	topo, err := BuildTopology(1, entities, nil, pads, nil)
	if err != nil {
		t.Fatal(err)
	}

	entity := topo.Entity(1)
	for i, pad := range entity.Pads {
		common.AssertEqual(t, uint32(i), pad.Index, "pad order")
	}
	common.AssertTrue(t, entity.PadByIndex(1) == topo.Pad(11), "PadByIndex")
	common.AssertTrue(t, entity.PadByIndex(9) == nil, "PadByIndex miss")
}

func TestMedia_BuildTopology_Errors(t *testing.T) {
	baseEntities := []RawEntity{
		{ID: 1, Name: "sensor", Function: FunctionCamSensor},
		{ID: 2, Name: "capture", Function: FunctionIOV4L},
	}
	baseInterfaces := []RawInterface{
		MockRawInterface(20),
	}
	basePads := []RawPad{
		{ID: 10, EntityID: 1, Index: 0, Flags: PadFlagSource},
		{ID: 11, EntityID: 2, Index: 0, Flags: PadFlagSink},
	}

	for name, tc := range map[string]struct {
		entities   []RawEntity
		interfaces []RawInterface
		pads       []RawPad
		links      []RawLink
		expErr     error
	}{
		"zero entity id": {
			entities: []RawEntity{{ID: 0, Name: "bogus"}},
			expErr:   errors.New("entity with zero id"),
		},
		"duplicate entity id": {
			entities: []RawEntity{baseEntities[0], baseEntities[0]},
			expErr:   errors.New("duplicate entity id 1"),
		},
		"duplicate interface id": {
			interfaces: []RawInterface{MockRawInterface(20), MockRawInterface(20)},
			expErr:     errors.New("duplicate interface id 20"),
		},
		"duplicate pad id": {
			entities: baseEntities,
			pads:     []RawPad{basePads[0], basePads[0]},
			expErr:   errors.New("duplicate pad id 10"),
		},
		"pad references missing entity": {
			entities: baseEntities,
			pads: []RawPad{
				{ID: 10, EntityID: 42, Index: 0, Flags: PadFlagSource},
			},
			expErr: errors.New("pad 10 references missing entity 42"),
		},
		"duplicate link id": {
			entities: baseEntities,
			pads:     basePads,
			links: []RawLink{
				MockRawLink(30, 10, 11, LinkFlagEnabled),
				MockRawLink(30, 10, 11, 0),
			},
			expErr: errors.New("duplicate link id 30"),
		},
		"link references missing source pad": {
			entities: baseEntities,
			pads:     basePads,
			links: []RawLink{
				MockRawLink(30, 99, 11, LinkFlagEnabled),
			},
			expErr: errors.New("link 30 references missing source pad 99"),
		},
		"link references missing sink pad": {
			entities: baseEntities,
			pads:     basePads,
			links: []RawLink{
				MockRawLink(30, 10, 99, LinkFlagEnabled),
			},
			expErr: errors.New("link 30 references missing sink pad 99"),
		},
		"interface link references missing interface": {
			entities:   baseEntities,
			interfaces: baseInterfaces,
			links: []RawLink{
				MockRawInterfaceLink(30, 99, 2),
			},
			expErr: errors.New("link 30 references missing interface 99"),
		},
		"interface link references missing entity": {
			entities:   baseEntities,
			interfaces: baseInterfaces,
			links: []RawLink{
				MockRawInterfaceLink(30, 20, 99),
			},
			expErr: errors.New("link 30 references missing entity 99"),
		},
		"ancillary link references missing primary": {
			entities: baseEntities,
			links: []RawLink{
				MockRawAncillaryLink(30, 99, 2),
			},
			expErr: errors.New("link 30 references missing primary entity 99"),
		},
		"ancillary link references missing ancillary": {
			entities: baseEntities,
			links: []RawLink{
				MockRawAncillaryLink(30, 1, 99),
			},
			expErr: errors.New("link 30 references missing ancillary entity 99"),
		},
		"unrecognized link type bits": {
			entities: baseEntities,
			pads:     basePads,
			links: []RawLink{
				{ID: 30, SourceID: 10, SinkID: 11, Flags: 7 << 28},
			},
			expErr: errors.New("link 30 has unrecognized type bits"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			topo, err := BuildTopology(1, tc.entities, tc.interfaces, tc.pads, tc.links)

			common.CmpErr(t, tc.expErr, err)
			common.AssertTrue(t, topo == nil, "no partial graph on error")
			common.AssertTrue(t, IsInvalidTopology(err), "expected InvalidTopology error")
		})
	}
}
