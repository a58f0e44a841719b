//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcprov

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/common/cmdutil"
	"github.com/linuxmedia/mediactl/lib/media"
	"github.com/linuxmedia/mediactl/lib/media/mcdev"
)

// DefaultDevice is the media device node queried when none is
// specified on the command line or in the configuration file.
const DefaultDevice = "/dev/media0"

type (
	// DeviceSetter defines an interface implemented by commands
	// that accept a default device from configuration.
	DeviceSetter interface {
		SetDevice(dev string)
	}

	// RetrySetter defines an interface implemented by commands that
	// accept a default retry budget from configuration.
	RetrySetter interface {
		SetRetries(retries uint)
	}

	// deviceCmd is an embeddable type for commands operating on a
	// single media device node.
	deviceCmd struct {
		Device string `short:"D" long:"device" description:"Media device node to query (default /dev/media0)"`
	}
)

// SetDevice sets the device node to query unless one was already
// given on the command line.
func (cmd *deviceCmd) SetDevice(dev string) {
	if cmd.Device == "" {
		cmd.Device = dev
	}
}

func (cmd *deviceCmd) device() string {
	if cmd.Device == "" {
		return DefaultDevice
	}
	return cmd.Device
}

// DumpTopologyCmd implements a go-flags Commander that dumps a media
// device's topology to stdout or to a file.
type DumpTopologyCmd struct {
	cmdutil.LogCmd
	cmdutil.JSONOutputCmd
	deviceCmd
	Output  string `short:"o" long:"output" default:"stdout" description:"Dump output to this location"`
	Retries *uint  `short:"r" long:"retries" description:"Retry budget for concurrent topology changes (default 2)"`
}

// SetRetries sets the retry budget unless one was already given on
// the command line.
func (cmd *DumpTopologyCmd) SetRetries(retries uint) {
	if cmd.Retries == nil {
		cmd.Retries = &retries
	}
}

func (cmd *DumpTopologyCmd) retryBudget() uint {
	if cmd.Retries != nil {
		return *cmd.Retries
	}
	return mcdev.DefaultRetries
}

// Execute runs the topology dump.
func (cmd *DumpTopologyCmd) Execute(_ []string) error {
	out := os.Stdout
	if cmd.Output != "stdout" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return errors.Wrapf(err, "failed to create %q", cmd.Output)
		}
		defer f.Close()
		out = f
	}

	prov := mcdev.NewProvider(cmd.Logger).WithRetries(cmd.retryBudget())
	topo, err := prov.GetTopology(cmd.MustLogCtx(), cmd.device())
	if err != nil {
		return err
	}

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(out, topo)
	}

	return media.PrintTopology(topo, out)
}

// DeviceInfoCmd implements a go-flags Commander that prints a media
// device's identification.
type DeviceInfoCmd struct {
	cmdutil.LogCmd
	cmdutil.JSONOutputCmd
	deviceCmd
}

// Execute runs the device info query.
func (cmd *DeviceInfoCmd) Execute(_ []string) error {
	prov := DefaultDeviceInfoProvider(cmd.Logger)
	info, err := prov.GetDeviceInfo(cmd.MustLogCtx(), cmd.device())
	if err != nil {
		return err
	}

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(os.Stdout, info)
	}

	return media.PrintDeviceInfo(info, os.Stdout)
}

// ScanCmd implements a go-flags Commander that lists the media
// device nodes present on the system.
type ScanCmd struct {
	cmdutil.LogCmd
	cmdutil.JSONOutputCmd
}

// Execute runs the device scan.
func (cmd *ScanCmd) Execute(_ []string) error {
	devices, err := NewScanner(cmd.Logger).Scan(cmd.MustLogCtx())
	if err != nil {
		return err
	}

	if cmd.JSONOutputEnabled() {
		return cmd.OutputJSON(os.Stdout, devices)
	}

	if len(devices) == 0 {
		cmd.Info("no media devices found")
		return nil
	}

	for _, dev := range devices {
		fmt.Fprintf(os.Stdout, "%s: %s\n", dev.Path, dev.Info)
	}

	return nil
}
