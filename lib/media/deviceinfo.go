//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "fmt"

// Version is a kernel-style packed version number (KERNEL_VERSION
// encoding: 8 bits each for major, minor, patch).
type Version uint32

// Major returns the major version component.
func (v Version) Major() uint32 {
	return uint32(v) >> 16 & 0xff
}

// Minor returns the minor version component.
func (v Version) Minor() uint32 {
	return uint32(v) >> 8 & 0xff
}

// Patch returns the patch version component.
func (v Version) Patch() uint32 {
	return uint32(v) & 0xff
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// DeviceInfo identifies a media device and its driver.
type DeviceInfo struct {
	Driver        string  `json:"driver"`
	Model         string  `json:"model"`
	Serial        string  `json:"serial"`
	BusInfo       string  `json:"bus_info"`
	MediaVersion  Version `json:"media_version"`
	HWRevision    uint32  `json:"hw_revision"`
	DriverVersion Version `json:"driver_version"`
}

func (di *DeviceInfo) String() string {
	if di == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s on %s)", di.Model, di.Driver, di.BusInfo)
}
