//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"testing"

	"github.com/linuxmedia/mediactl/common"
)

// Pin the derived request codes to the values declared in
// linux/media.h. A change here means the struct sizes drifted and the
// kernel would reject the calls with ENOTTY.
func TestMcdev_RequestCodes(t *testing.T) {
	common.AssertEqual(t, uintptr(0xc1007c00), miocDeviceInfo, "MEDIA_IOC_DEVICE_INFO")
	common.AssertEqual(t, uintptr(0xc0487c04), miocGTopology, "MEDIA_IOC_G_TOPOLOGY")
}
