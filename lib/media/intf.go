//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import "fmt"

// InterfaceType is the MEDIA_INTF_T_* type code of an interface.
type InterfaceType uint32

const (
	interfaceDVBBase  InterfaceType = 0x00000100
	interfaceV4LBase  InterfaceType = 0x00000200
	interfaceALSABase InterfaceType = 0x00000300
)

const (
	InterfaceTypeDVBFE    InterfaceType = interfaceDVBBase
	InterfaceTypeDVBDemux InterfaceType = interfaceDVBBase + 1
	InterfaceTypeDVBDVR   InterfaceType = interfaceDVBBase + 2
	InterfaceTypeDVBCA    InterfaceType = interfaceDVBBase + 3
	InterfaceTypeDVBNet   InterfaceType = interfaceDVBBase + 4

	InterfaceTypeV4LVideo   InterfaceType = interfaceV4LBase
	InterfaceTypeV4LVBI     InterfaceType = interfaceV4LBase + 1
	InterfaceTypeV4LRadio   InterfaceType = interfaceV4LBase + 2
	InterfaceTypeV4LSubdev  InterfaceType = interfaceV4LBase + 3
	InterfaceTypeV4LSWRadio InterfaceType = interfaceV4LBase + 4
	InterfaceTypeV4LTouch   InterfaceType = interfaceV4LBase + 5

	InterfaceTypeALSAPCMCapture  InterfaceType = interfaceALSABase
	InterfaceTypeALSAPCMPlayback InterfaceType = interfaceALSABase + 1
	InterfaceTypeALSATimer       InterfaceType = interfaceALSABase + 2
)

var interfaceTypeNames = map[InterfaceType]string{
	InterfaceTypeDVBFE:           "DVB frontend",
	InterfaceTypeDVBDemux:        "DVB demux",
	InterfaceTypeDVBDVR:          "DVB DVR",
	InterfaceTypeDVBCA:           "DVB conditional access",
	InterfaceTypeDVBNet:          "DVB network",
	InterfaceTypeV4LVideo:        "V4L video",
	InterfaceTypeV4LVBI:          "V4L VBI",
	InterfaceTypeV4LRadio:        "V4L radio",
	InterfaceTypeV4LSubdev:       "V4L sub-device",
	InterfaceTypeV4LSWRadio:      "V4L software radio",
	InterfaceTypeV4LTouch:        "V4L touch",
	InterfaceTypeALSAPCMCapture:  "ALSA PCM capture",
	InterfaceTypeALSAPCMPlayback: "ALSA PCM playback",
	InterfaceTypeALSATimer:       "ALSA timer",
}

func (t InterfaceType) String() string {
	if name, found := interfaceTypeNames[t]; found {
		return name
	}
	return fmt.Sprintf("unknown interface type (0x%08x)", uint32(t))
}

// DevNode identifies the character device backing an interface by its
// major/minor numbers.
type DevNode struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

func (d DevNode) String() string {
	return fmt.Sprintf("%d:%d", d.Major, d.Minor)
}
