//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"bytes"
	"encoding/binary"

	"github.com/linuxmedia/mediactl/lib/media"
)

// Record sizes of the MEDIA_IOC_G_TOPOLOGY and MEDIA_IOC_DEVICE_INFO
// ABI structs. The kernel declares these packed; every field below is
// naturally aligned so the Go header struct matches byte-for-byte on
// 64-bit platforms. The array records are decoded from raw bytes
// rather than reinterpreted in place, keeping all unsafe access
// confined to the transport.
const (
	sizeofTopologyHeader = 72
	sizeofEntityRecord   = 96
	sizeofIntfRecord     = 112
	sizeofPadRecord      = 32
	sizeofLinkRecord     = 40
	sizeofDeviceInfo     = 256

	entityNameLen = 64
)

// topologyHeader mirrors struct media_v2_topology. The reserved
// fields must be zero on entry to every ioctl; the kernel fails the
// call with EINVAL otherwise.
type topologyHeader struct {
	TopologyVersion uint64

	NumEntities uint32
	Reserved1   uint32
	PtrEntities uint64

	NumInterfaces uint32
	Reserved2     uint32
	PtrInterfaces uint64

	NumPads   uint32
	Reserved3 uint32
	PtrPads   uint64

	NumLinks  uint32
	Reserved4 uint32
	PtrLinks  uint64
}

// deviceInfoRecord mirrors struct media_device_info.
type deviceInfoRecord struct {
	Driver        [16]byte
	Model         [32]byte
	Serial        [40]byte
	BusInfo       [32]byte
	MediaVersion  uint32
	HWRevision    uint32
	DriverVersion uint32
	Reserved      [31]uint32
}

// topologyBuffers holds the caller-allocated destination arrays for
// the fill phase of a topology query. Each slice is a whole number of
// records; a nil slice means the corresponding count was zero.
type topologyBuffers struct {
	entities   []byte
	interfaces []byte
	pads       []byte
	links      []byte
}

func newTopologyBuffers(hdr *topologyHeader) *topologyBuffers {
	bufs := &topologyBuffers{}
	if hdr.NumEntities > 0 {
		bufs.entities = make([]byte, int(hdr.NumEntities)*sizeofEntityRecord)
	}
	if hdr.NumInterfaces > 0 {
		bufs.interfaces = make([]byte, int(hdr.NumInterfaces)*sizeofIntfRecord)
	}
	if hdr.NumPads > 0 {
		bufs.pads = make([]byte, int(hdr.NumPads)*sizeofPadRecord)
	}
	if hdr.NumLinks > 0 {
		bufs.links = make([]byte, int(hdr.NumLinks)*sizeofLinkRecord)
	}
	return bufs
}

// recordCount bounds the number of records decoded from a buffer to
// what was both requested and reported. A well-behaved kernel never
// reports more than it was given space for, but a shrinking count
// must not lead to decoding stale trailing bytes.
func recordCount(buf []byte, recordSize int, reported uint32) int {
	capacity := len(buf) / recordSize
	if int(reported) < capacity {
		return int(reported)
	}
	return capacity
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func decodeEntities(buf []byte, reported uint32) []media.RawEntity {
	n := recordCount(buf, sizeofEntityRecord, reported)
	entities := make([]media.RawEntity, 0, n)

	for i := 0; i < n; i++ {
		rec := buf[i*sizeofEntityRecord:]
		entities = append(entities, media.RawEntity{
			ID:       binary.LittleEndian.Uint32(rec[0:]),
			Name:     cString(rec[4 : 4+entityNameLen]),
			Function: media.EntityFunction(binary.LittleEndian.Uint32(rec[68:])),
			Flags:    media.EntityFlags(binary.LittleEndian.Uint32(rec[72:])),
		})
	}

	return entities
}

func decodeInterfaces(buf []byte, reported uint32) []media.RawInterface {
	n := recordCount(buf, sizeofIntfRecord, reported)
	interfaces := make([]media.RawInterface, 0, n)

	for i := 0; i < n; i++ {
		rec := buf[i*sizeofIntfRecord:]
		interfaces = append(interfaces, media.RawInterface{
			ID:    binary.LittleEndian.Uint32(rec[0:]),
			Type:  media.InterfaceType(binary.LittleEndian.Uint32(rec[4:])),
			Flags: binary.LittleEndian.Uint32(rec[8:]),
			DevNode: media.DevNode{
				Major: binary.LittleEndian.Uint32(rec[48:]),
				Minor: binary.LittleEndian.Uint32(rec[52:]),
			},
		})
	}

	return interfaces
}

func decodePads(buf []byte, reported uint32) []media.RawPad {
	n := recordCount(buf, sizeofPadRecord, reported)
	pads := make([]media.RawPad, 0, n)

	for i := 0; i < n; i++ {
		rec := buf[i*sizeofPadRecord:]
		pads = append(pads, media.RawPad{
			ID:       binary.LittleEndian.Uint32(rec[0:]),
			EntityID: binary.LittleEndian.Uint32(rec[4:]),
			Flags:    media.PadFlags(binary.LittleEndian.Uint32(rec[8:])),
			Index:    binary.LittleEndian.Uint32(rec[12:]),
		})
	}

	return pads
}

func decodeLinks(buf []byte, reported uint32) []media.RawLink {
	n := recordCount(buf, sizeofLinkRecord, reported)
	links := make([]media.RawLink, 0, n)

	for i := 0; i < n; i++ {
		rec := buf[i*sizeofLinkRecord:]
		links = append(links, media.RawLink{
			ID:       binary.LittleEndian.Uint32(rec[0:]),
			SourceID: binary.LittleEndian.Uint32(rec[4:]),
			SinkID:   binary.LittleEndian.Uint32(rec[8:]),
			Flags:    media.LinkFlags(binary.LittleEndian.Uint32(rec[12:])),
		})
	}

	return links
}

func decodeDeviceInfo(rec *deviceInfoRecord) *media.DeviceInfo {
	return &media.DeviceInfo{
		Driver:        cString(rec.Driver[:]),
		Model:         cString(rec.Model[:]),
		Serial:        cString(rec.Serial[:]),
		BusInfo:       cString(rec.BusInfo[:]),
		MediaVersion:  media.Version(rec.MediaVersion),
		HWRevision:    rec.HWRevision,
		DriverVersion: media.Version(rec.DriverVersion),
	}
}
