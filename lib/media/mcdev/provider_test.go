//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/linuxmedia/mediactl/common"
	"github.com/linuxmedia/mediactl/lib/media"
	"github.com/linuxmedia/mediactl/logging"
)

// mockDevicePath creates a regular file standing in for a media device
// node. The mock transport never touches the descriptor, so any
// openable path will do.
func mockDevicePath(t *testing.T) (string, func()) {
	t.Helper()

	dir, cleanup := common.CreateTestDir(t)
	path := filepath.Join(dir, "media0")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		cleanup()
		t.Fatal(err)
	}

	return path, cleanup
}

func mockPipelineConfig() MockTransportConfig {
	version, entities, interfaces, pads, links := media.MockSensorPipeline()
	return MockTransportConfig{
		Versions:   []uint64{version},
		Entities:   entities,
		Interfaces: interfaces,
		Pads:       pads,
		Links:      links,
	}
}

func TestMcdev_GetTopology(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	provider := NewMockProvider(log, mockPipelineConfig())

	topo, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, uint64(1), topo.Version, "version")
	common.AssertEqual(t, 2, topo.NumEntities(), "entity count")
	common.AssertEqual(t, 1, topo.NumInterfaces(), "interface count")
	common.AssertEqual(t, 2, topo.NumPads(), "pad count")
	common.AssertEqual(t, 2, topo.NumLinks(), "link count")

	mock := provider.transport.(*MockTransport)
	common.AssertEqual(t, 2, mock.NumTopologyCalls(), "discovery + fill")
}

func TestMcdev_GetTopology_RetryOnVersionChange(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	// First attempt sees the version move between discovery and fill;
	// the second attempt sees a stable version.
	cfg := mockPipelineConfig()
	cfg.Versions = []uint64{1, 2, 2, 2}

	provider := NewMockProvider(log, cfg)

	topo, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, uint64(2), topo.Version, "version")

	mock := provider.transport.(*MockTransport)
	common.AssertEqual(t, 4, mock.NumTopologyCalls(), "two full attempts")
}

func TestMcdev_GetTopology_RetriesExhausted(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	// The version moves on every call, so no attempt ever succeeds.
	cfg := mockPipelineConfig()
	cfg.Versions = []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	provider := NewMockProvider(log, cfg).WithRetries(1)

	topo, err := provider.GetTopology(context.Background(), path)

	common.CmpErr(t, errors.New("2 attempts exhausted"), err)
	common.AssertTrue(t, media.IsTopologyChanged(err), "expected TopologyChanged error")
	common.AssertTrue(t, topo == nil, "no topology on error")

	mock := provider.transport.(*MockTransport)
	common.AssertEqual(t, 4, mock.NumTopologyCalls(), "two failed attempts")
}

func TestMcdev_GetTopology_EmptyGraph(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	provider := NewMockProvider(log, MockTransportConfig{})

	topo, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, 0, topo.NumEntities(), "entity count")
	common.AssertEqual(t, 0, topo.NumLinks(), "link count")
}

func TestMcdev_GetTopology_ShrunkenFillCounts(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	// The fill call reports fewer records than discovery sized the
	// buffers for; only the reported prefix may be decoded.
	cfg := mockPipelineConfig()
	cfg.FillCounts = &TopologyCounts{Entities: 1}

	provider := NewMockProvider(log, cfg)

	topo, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	common.AssertEqual(t, 1, topo.NumEntities(), "entity count")
	common.AssertEqual(t, 0, topo.NumPads(), "pad count")
	common.AssertEqual(t, 0, topo.NumLinks(), "link count")
}

func TestMcdev_GetTopology_IoctlErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		setup  func(*MockTransportConfig)
		expErr error
	}{
		"discovery fails": {
			setup: func(cfg *MockTransportConfig) {
				cfg.DiscoverErr = unix.ENOTTY
			},
			expErr: errors.New("topology size discovery failed"),
		},
		"fill fails": {
			setup: func(cfg *MockTransportConfig) {
				cfg.FillErr = unix.EFAULT
			},
			expErr: errors.New("topology fill failed"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			log, buf := logging.NewTestLogger(t.Name())
			defer common.ShowBufferOnFailure(t, buf)

			path, cleanup := mockDevicePath(t)
			defer cleanup()

			cfg := mockPipelineConfig()
			tc.setup(&cfg)

			provider := NewMockProvider(log, cfg)

			topo, err := provider.GetTopology(context.Background(), path)

			common.CmpErr(t, tc.expErr, err)
			common.AssertTrue(t, topo == nil, "no topology on error")
		})
	}
}

func TestMcdev_GetTopology_OpenFailure(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	provider := NewMockProvider(log, mockPipelineConfig())

	_, err := provider.GetTopology(context.Background(), "/nonexistent/media0")
	common.CmpErr(t, errors.New("failed to open media device"), err)
}

func TestMcdev_GetTopology_ContextCanceled(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	provider := NewMockProvider(log, mockPipelineConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GetTopology(ctx, path)
	common.CmpErr(t, context.Canceled, err)

	mock := provider.transport.(*MockTransport)
	common.AssertEqual(t, 0, mock.NumTopologyCalls(), "no calls after cancellation")
}

func TestMcdev_GetTopology_Idempotent(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	provider := NewMockProvider(log, mockPipelineConfig())

	entityIDs := func(topo *media.Topology) (ids []uint32) {
		for _, entity := range topo.Entities.AsSlice() {
			ids = append(ids, entity.ID)
		}
		return
	}

	first, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := provider.GetTopology(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(entityIDs(first), entityIDs(second)); diff != "" {
		t.Fatalf("queries disagree (-first, +second):\n%s", diff)
	}
}

func TestMcdev_GetDeviceInfo(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	expInfo := &media.DeviceInfo{
		Driver:        "uvcvideo",
		Model:         "Test Webcam",
		Serial:        "SN12345",
		BusInfo:       "usb-0000:00:14.0-1",
		MediaVersion:  5<<16 | 10<<8 | 3,
		HWRevision:    0x0510,
		DriverVersion: 5<<16 | 10<<8 | 3,
	}

	provider := NewMockProvider(log, MockTransportConfig{DeviceInfo: expInfo})

	info, err := provider.GetDeviceInfo(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(expInfo, info); diff != "" {
		t.Fatalf("unexpected device info (-want, +got):\n%s", diff)
	}
}

func TestMcdev_GetDeviceInfo_Errors(t *testing.T) {
	log, buf := logging.NewTestLogger(t.Name())
	defer common.ShowBufferOnFailure(t, buf)

	path, cleanup := mockDevicePath(t)
	defer cleanup()

	provider := NewMockProvider(log, MockTransportConfig{DeviceInfoErr: unix.ENOTTY})

	_, err := provider.GetDeviceInfo(context.Background(), path)
	common.CmpErr(t, errors.New("device info query"), err)

	_, err = provider.GetDeviceInfo(context.Background(), "/nonexistent/media0")
	common.CmpErr(t, errors.New("failed to open media device"), err)
}
