//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request code construction, after the kernel's _IOWR macro.
// The media subsystem uses '|' as its ioctl type byte.
const (
	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2

	mediaIoctlType = '|'
)

func ioRW(nr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<iocDirShift |
		size<<iocSizeShift |
		mediaIoctlType<<iocTypeShift |
		nr<<iocNrShift
}

// MEDIA_IOC_DEVICE_INFO and MEDIA_IOC_G_TOPOLOGY request codes,
// derived from the record sizes exactly as the kernel header does.
var (
	miocDeviceInfo = ioRW(0x00, unsafe.Sizeof(deviceInfoRecord{}))
	miocGTopology  = ioRW(0x04, unsafe.Sizeof(topologyHeader{}))
)

// ioctl issues a single ioctl against an open file descriptor. The
// kernel mutates the pointed-to buffer in place. Errors are surfaced
// verbatim as unix.Errno values; retry policy belongs to the caller.
func ioctl(fd int, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// transport abstracts the two media ioctls so that tests can
// substitute a scripted kernel.
type transport interface {
	queryTopology(fd int, hdr *topologyHeader, bufs *topologyBuffers) error
	queryDeviceInfo(fd int, rec *deviceInfoRecord) error
}

// devTransport issues real ioctls against a media device node.
type devTransport struct{}

func (devTransport) queryTopology(fd int, hdr *topologyHeader, bufs *topologyBuffers) error {
	if bufs != nil {
		if len(bufs.entities) > 0 {
			hdr.PtrEntities = uint64(uintptr(unsafe.Pointer(&bufs.entities[0])))
		}
		if len(bufs.interfaces) > 0 {
			hdr.PtrInterfaces = uint64(uintptr(unsafe.Pointer(&bufs.interfaces[0])))
		}
		if len(bufs.pads) > 0 {
			hdr.PtrPads = uint64(uintptr(unsafe.Pointer(&bufs.pads[0])))
		}
		if len(bufs.links) > 0 {
			hdr.PtrLinks = uint64(uintptr(unsafe.Pointer(&bufs.links[0])))
		}
	}

	err := ioctl(fd, miocGTopology, unsafe.Pointer(hdr))
	runtime.KeepAlive(bufs)
	return err
}

func (devTransport) queryDeviceInfo(fd int, rec *deviceInfoRecord) error {
	return ioctl(fd, miocDeviceInfo, unsafe.Pointer(rec))
}
