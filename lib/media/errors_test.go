//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package media

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/common"
)

func TestMedia_IsTopologyChanged(t *testing.T) {
	for name, tc := range map[string]struct {
		err       error
		expResult bool
	}{
		"nil":          {},
		"sentinel":     {err: ErrTopologyChanged, expResult: true},
		"wrapped":      {err: errors.Wrap(ErrTopologyChanged, "3 attempts exhausted"), expResult: true},
		"other":        {err: errors.New("whoops")},
		"invalid topo": {err: ErrInvalidTopology("entity with zero id")},
	} {
		t.Run(name, func(t *testing.T) {
			common.AssertEqual(t, tc.expResult, IsTopologyChanged(tc.err), "")
		})
	}
}

func TestMedia_IsInvalidTopology(t *testing.T) {
	for name, tc := range map[string]struct {
		err       error
		expResult bool
	}{
		"nil":      {},
		"invalid":  {err: ErrInvalidTopology("duplicate pad id %d", 10), expResult: true},
		"wrapped":  {err: errors.Wrap(ErrInvalidTopology("bad"), "context"), expResult: true},
		"other":    {err: errors.New("whoops")},
		"sentinel": {err: ErrTopologyChanged},
	} {
		t.Run(name, func(t *testing.T) {
			common.AssertEqual(t, tc.expResult, IsInvalidTopology(tc.err), "")
		})
	}
}

func TestMedia_ErrInvalidTopology_Message(t *testing.T) {
	err := ErrInvalidTopology("pad %d references missing entity %d", 10, 42)
	common.AssertEqual(t, "invalid media topology: pad 10 references missing entity 42",
		err.Error(), "")
}
