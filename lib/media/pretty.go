//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/lib/txtfmt"
)

// PrintTopology writes a human-readable representation of the
// topology graph, one entity per section with its pads and links.
func PrintTopology(topo *Topology, out io.Writer) error {
	if topo == nil {
		return errors.New("nil Topology")
	}

	ew := txtfmt.NewErrWriter(out)

	fmt.Fprintf(ew, "Topology version: %d (%d entities, %d interfaces, %d pads, %d links)\n",
		topo.Version, topo.NumEntities(), topo.NumInterfaces(), topo.NumPads(), topo.NumLinks())

	for _, entity := range topo.Entities.AsSlice() {
		fmt.Fprintf(ew, "- entity %d: %q (%s)\n", entity.ID, entity.Name, entity.Function)

		iw := txtfmt.NewIndentWriter(ew, txtfmt.WithPadCount(4))
		if flags := entity.Flags.String(); flags != "" {
			fmt.Fprintf(iw, "flags: %s\n", flags)
		}
		if entity.Interface != nil {
			fmt.Fprintf(iw, "interface: %s (%s)\n", entity.Interface.Type, entity.Interface.DevNode)
		}

		for _, pad := range entity.Pads {
			fmt.Fprintf(iw, "pad %d: %s\n", pad.Index, pad.Flags)

			lw := txtfmt.NewIndentWriter(iw, txtfmt.WithPadCount(2))
			for _, link := range pad.Links {
				printPadLink(lw, pad, link)
			}
		}

		for _, link := range topo.Links {
			if link.Kind() == LinkKindAncillary && link.Primary == entity {
				fmt.Fprintf(iw, "ancillary -> entity %d %q\n",
					link.Ancillary.ID, link.Ancillary.Name)
			}
		}
	}

	return ew.Err
}

func printPadLink(out io.Writer, pad *Pad, link *Link) {
	flags := link.Flags.String()
	if flags != "" {
		flags = " [" + flags + "]"
	}

	if link.Source == pad {
		fmt.Fprintf(out, "-> entity %d %q pad %d%s\n",
			link.Sink.Entity.ID, link.Sink.Entity.Name, link.Sink.Index, flags)
		return
	}
	fmt.Fprintf(out, "<- entity %d %q pad %d%s\n",
		link.Source.Entity.ID, link.Source.Entity.Name, link.Source.Index, flags)
}

// PrintDeviceInfo writes a human-readable representation of the
// device identification.
func PrintDeviceInfo(di *DeviceInfo, out io.Writer) error {
	if di == nil {
		return errors.New("nil DeviceInfo")
	}

	ew := txtfmt.NewErrWriter(out)

	fmt.Fprintf(ew, "driver:         %s\n", di.Driver)
	fmt.Fprintf(ew, "model:          %s\n", di.Model)
	if di.Serial != "" {
		fmt.Fprintf(ew, "serial:         %s\n", di.Serial)
	}
	fmt.Fprintf(ew, "bus info:       %s\n", di.BusInfo)
	fmt.Fprintf(ew, "media version:  %s\n", di.MediaVersion)
	fmt.Fprintf(ew, "hw revision:    0x%x\n", di.HWRevision)
	fmt.Fprintf(ew, "driver version: %s\n", di.DriverVersion)

	return ew.Err
}
