//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package mcdev

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/lib/media"
	"github.com/linuxmedia/mediactl/logging"
)

// DefaultRetries is the default number of additional retrieval
// attempts made when the topology version changes between the
// size-discovery and fill calls.
const DefaultRetries = 2

var (
	_ media.TopologyProvider   = (*Provider)(nil)
	_ media.DeviceInfoProvider = (*Provider)(nil)
)

// NewProvider creates a Provider that queries media device nodes
// through the Media Controller ioctl interface.
func NewProvider(log logging.Logger) *Provider {
	return &Provider{
		log:       log,
		transport: devTransport{},
		retries:   DefaultRetries,
	}
}

// Provider fetches topology and device identification from a media
// device node. Each query opens its own descriptor, so a single
// Provider may be used from multiple goroutines.
type Provider struct {
	log       logging.Logger
	transport transport
	retries   uint
}

// WithRetries sets the number of additional attempts made when a
// concurrent topology change is detected mid-retrieval.
func (p *Provider) WithRetries(retries uint) *Provider {
	p.retries = retries
	return p
}

// GetTopology fetches a consistent topology snapshot from the media
// device at path and builds the validated graph. The device is opened
// for the duration of the query only and is closed on every exit path.
func (p *Provider) GetTopology(ctx context.Context, path string) (*media.Topology, error) {
	if p == nil {
		return nil, errors.New("nil mcdev provider")
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media device %q", path)
	}
	defer f.Close()

	raw, err := p.fetchTopology(ctx, int(f.Fd()))
	if err != nil {
		return nil, errors.Wrapf(err, "fetching topology from %q", path)
	}

	return media.BuildTopology(raw.version, raw.entities, raw.interfaces, raw.pads, raw.links)
}

// rawTopology carries the decoded arrays of one consistent snapshot.
type rawTopology struct {
	version    uint64
	entities   []media.RawEntity
	interfaces []media.RawInterface
	pads       []media.RawPad
	links      []media.RawLink
}

// fetchTopology runs the two-phase sized-retrieval protocol:
//
//  1. Issue the topology ioctl with all counts zeroed. The kernel
//     fills in the true counts and the current topology version
//     without writing any array contents.
//  2. Allocate exactly-sized buffers and issue the ioctl again to
//     fill them.
//  3. If the reported version changed between the two calls, another
//     process modified the graph mid-retrieval and the counts may be
//     stale; discard everything and start over, up to the retry
//     budget.
func (p *Provider) fetchTopology(ctx context.Context, fd int) (*rawTopology, error) {
	for attempt := uint(0); attempt <= p.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var hdr topologyHeader
		if err := p.transport.queryTopology(fd, &hdr, nil); err != nil {
			return nil, errors.Wrap(err, "topology size discovery failed")
		}

		version := hdr.TopologyVersion
		bufs := newTopologyBuffers(&hdr)

		if err := p.transport.queryTopology(fd, &hdr, bufs); err != nil {
			return nil, errors.Wrap(err, "topology fill failed")
		}

		if hdr.TopologyVersion != version {
			p.log.Debugf("topology version changed during retrieval (%d -> %d), retrying",
				version, hdr.TopologyVersion)
			continue
		}

		return &rawTopology{
			version:    hdr.TopologyVersion,
			entities:   decodeEntities(bufs.entities, hdr.NumEntities),
			interfaces: decodeInterfaces(bufs.interfaces, hdr.NumInterfaces),
			pads:       decodePads(bufs.pads, hdr.NumPads),
			links:      decodeLinks(bufs.links, hdr.NumLinks),
		}, nil
	}

	return nil, errors.Wrapf(media.ErrTopologyChanged, "%d attempts exhausted", p.retries+1)
}

// GetDeviceInfo fetches driver and hardware identification from the
// media device at path.
func (p *Provider) GetDeviceInfo(ctx context.Context, path string) (*media.DeviceInfo, error) {
	if p == nil {
		return nil, errors.New("nil mcdev provider")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media device %q", path)
	}
	defer f.Close()

	var rec deviceInfoRecord
	if err := p.transport.queryDeviceInfo(int(f.Fd()), &rec); err != nil {
		return nil, errors.Wrapf(err, "device info query on %q failed", path)
	}

	return decodeDeviceInfo(&rec), nil
}
