//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcprov

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/lib/media"
	"github.com/linuxmedia/mediactl/lib/media/mcdev"
	"github.com/linuxmedia/mediactl/logging"
)

// DefaultTopologyProvider gets the default media topology provider.
func DefaultTopologyProvider(log logging.Logger) media.TopologyProvider {
	return mcdev.NewProvider(log)
}

// DefaultDeviceInfoProvider gets the default provider for media
// device identification.
func DefaultDeviceInfoProvider(log logging.Logger) media.DeviceInfoProvider {
	return mcdev.NewProvider(log)
}

// GetTopology fetches the topology of the media device at path using
// the default provider.
func GetTopology(ctx context.Context, log logging.Logger, path string) (*media.Topology, error) {
	return DefaultTopologyProvider(log).GetTopology(ctx, path)
}

// ScannedDevice describes one media device node found by a scan.
type ScannedDevice struct {
	Path string            `json:"path"`
	Info *media.DeviceInfo `json:"info,omitempty"`
}

// NewScanner creates a Scanner that discovers media device nodes
// under /dev.
func NewScanner(log logging.Logger) *Scanner {
	return &Scanner{
		log:     log,
		devRoot: "/dev",
		info:    mcdev.NewProvider(log),
	}
}

// Scanner discovers media device nodes and queries their
// identification.
type Scanner struct {
	log     logging.Logger
	devRoot string
	info    media.DeviceInfoProvider
}

// Scan finds media device nodes and returns one entry per device,
// sorted by path. Devices that cannot be queried (e.g. permission
// denied) are skipped with a debug log rather than failing the scan.
func (s *Scanner) Scan(ctx context.Context) ([]*ScannedDevice, error) {
	if s == nil {
		return nil, errors.New("nil Scanner")
	}

	paths, err := filepath.Glob(filepath.Join(s.devRoot, "media*"))
	if err != nil {
		return nil, errors.Wrap(err, "globbing media device nodes")
	}
	sort.Strings(paths)

	devices := make([]*ScannedDevice, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := s.info.GetDeviceInfo(ctx, path)
		if err != nil {
			s.log.Debugf("skipping %s: %s", path, err)
			continue
		}

		devices = append(devices, &ScannedDevice{
			Path: path,
			Info: info,
		})
	}

	return devices, nil
}
