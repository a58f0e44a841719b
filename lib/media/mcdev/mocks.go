//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"encoding/binary"

	"github.com/linuxmedia/mediactl/lib/media"
	"github.com/linuxmedia/mediactl/logging"
)

type (
	// TopologyCounts overrides the record counts reported by a mock
	// fill call, to simulate a kernel whose graph shrank between the
	// discovery and fill phases.
	TopologyCounts struct {
		Entities   uint32
		Interfaces uint32
		Pads       uint32
		Links      uint32
	}

	// MockTransportConfig scripts the behavior of a simulated
	// kernel.
	MockTransportConfig struct {
		// Versions is the topology version reported per topology
		// call; the last entry repeats once exhausted. Defaults to a
		// constant version of 1.
		Versions []uint64

		Entities   []media.RawEntity
		Interfaces []media.RawInterface
		Pads       []media.RawPad
		Links      []media.RawLink

		// FillCounts, if set, overrides the counts reported by fill
		// calls.
		FillCounts *TopologyCounts

		DiscoverErr   error
		FillErr       error
		DeviceInfo    *media.DeviceInfo
		DeviceInfoErr error
	}

	// MockTransport is a scripted in-memory stand-in for the media
	// ioctl interface.
	MockTransport struct {
		cfg   MockTransportConfig
		calls int
	}
)

// NewMockTransport creates a MockTransport with the given script.
func NewMockTransport(cfg MockTransportConfig) *MockTransport {
	return &MockTransport{cfg: cfg}
}

// NewMockProvider creates a Provider backed by a mock transport
// instead of real ioctls.
func NewMockProvider(log logging.Logger, cfg MockTransportConfig) *Provider {
	return &Provider{
		log:       log,
		transport: NewMockTransport(cfg),
		retries:   DefaultRetries,
	}
}

// NumTopologyCalls returns the number of topology calls made against
// the mock.
func (m *MockTransport) NumTopologyCalls() int {
	return m.calls
}

func (m *MockTransport) version() uint64 {
	if len(m.cfg.Versions) == 0 {
		return 1
	}
	if m.calls >= len(m.cfg.Versions) {
		return m.cfg.Versions[len(m.cfg.Versions)-1]
	}
	return m.cfg.Versions[m.calls]
}

func (m *MockTransport) queryTopology(fd int, hdr *topologyHeader, bufs *topologyBuffers) error {
	version := m.version()
	m.calls++

	if bufs == nil {
		if m.cfg.DiscoverErr != nil {
			return m.cfg.DiscoverErr
		}

		hdr.TopologyVersion = version
		hdr.NumEntities = uint32(len(m.cfg.Entities))
		hdr.NumInterfaces = uint32(len(m.cfg.Interfaces))
		hdr.NumPads = uint32(len(m.cfg.Pads))
		hdr.NumLinks = uint32(len(m.cfg.Links))
		return nil
	}

	if m.cfg.FillErr != nil {
		return m.cfg.FillErr
	}

	counts := TopologyCounts{
		Entities:   uint32(len(m.cfg.Entities)),
		Interfaces: uint32(len(m.cfg.Interfaces)),
		Pads:       uint32(len(m.cfg.Pads)),
		Links:      uint32(len(m.cfg.Links)),
	}
	if m.cfg.FillCounts != nil {
		counts = *m.cfg.FillCounts
	}

	hdr.TopologyVersion = version
	hdr.NumEntities = counts.Entities
	hdr.NumInterfaces = counts.Interfaces
	hdr.NumPads = counts.Pads
	hdr.NumLinks = counts.Links

	encodeEntities(bufs.entities, m.cfg.Entities)
	encodeInterfaces(bufs.interfaces, m.cfg.Interfaces)
	encodePads(bufs.pads, m.cfg.Pads)
	encodeLinks(bufs.links, m.cfg.Links)

	return nil
}

func (m *MockTransport) queryDeviceInfo(fd int, rec *deviceInfoRecord) error {
	if m.cfg.DeviceInfoErr != nil {
		return m.cfg.DeviceInfoErr
	}

	info := m.cfg.DeviceInfo
	if info == nil {
		info = &media.DeviceInfo{Driver: "mock-media"}
	}

	copy(rec.Driver[:], info.Driver)
	copy(rec.Model[:], info.Model)
	copy(rec.Serial[:], info.Serial)
	copy(rec.BusInfo[:], info.BusInfo)
	rec.MediaVersion = uint32(info.MediaVersion)
	rec.HWRevision = info.HWRevision
	rec.DriverVersion = uint32(info.DriverVersion)

	return nil
}

// The encode helpers below write records in the same byte layout the
// decode functions read, up to the capacity of the destination buffer.

func encodeEntities(buf []byte, entities []media.RawEntity) {
	capacity := len(buf) / sizeofEntityRecord
	for i, entity := range entities {
		if i >= capacity {
			return
		}
		rec := buf[i*sizeofEntityRecord:]
		binary.LittleEndian.PutUint32(rec[0:], entity.ID)
		copy(rec[4:4+entityNameLen-1], entity.Name)
		binary.LittleEndian.PutUint32(rec[68:], uint32(entity.Function))
		binary.LittleEndian.PutUint32(rec[72:], uint32(entity.Flags))
	}
}

func encodeInterfaces(buf []byte, interfaces []media.RawInterface) {
	capacity := len(buf) / sizeofIntfRecord
	for i, intf := range interfaces {
		if i >= capacity {
			return
		}
		rec := buf[i*sizeofIntfRecord:]
		binary.LittleEndian.PutUint32(rec[0:], intf.ID)
		binary.LittleEndian.PutUint32(rec[4:], uint32(intf.Type))
		binary.LittleEndian.PutUint32(rec[8:], intf.Flags)
		binary.LittleEndian.PutUint32(rec[48:], intf.DevNode.Major)
		binary.LittleEndian.PutUint32(rec[52:], intf.DevNode.Minor)
	}
}

func encodePads(buf []byte, pads []media.RawPad) {
	capacity := len(buf) / sizeofPadRecord
	for i, pad := range pads {
		if i >= capacity {
			return
		}
		rec := buf[i*sizeofPadRecord:]
		binary.LittleEndian.PutUint32(rec[0:], pad.ID)
		binary.LittleEndian.PutUint32(rec[4:], pad.EntityID)
		binary.LittleEndian.PutUint32(rec[8:], uint32(pad.Flags))
		binary.LittleEndian.PutUint32(rec[12:], pad.Index)
	}
}

func encodeLinks(buf []byte, links []media.RawLink) {
	capacity := len(buf) / sizeofLinkRecord
	for i, link := range links {
		if i >= capacity {
			return
		}
		rec := buf[i*sizeofLinkRecord:]
		binary.LittleEndian.PutUint32(rec[0:], link.ID)
		binary.LittleEndian.PutUint32(rec[4:], link.SourceID)
		binary.LittleEndian.PutUint32(rec[8:], link.SinkID)
		binary.LittleEndian.PutUint32(rec[12:], uint32(link.Flags))
	}
}
