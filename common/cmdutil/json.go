//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"encoding/json"
	"io"
)

var _ JSONOutputter = (*JSONOutputCmd)(nil)

type (
	// JSONOutputter defines an interface to be implemented by
	// types that can emit JSON output.
	JSONOutputter interface {
		EnableJSONOutput(bool)
		JSONOutputEnabled() bool
		OutputJSON(io.Writer, interface{}) error
	}

	// JSONOutputCmd is an embeddable type that extends a command
	// with JSON output capabilities.
	JSONOutputCmd struct {
		shouldEmitJSON bool
	}
)

// EnableJSONOutput toggles JSON output for the command.
func (cmd *JSONOutputCmd) EnableJSONOutput(emitJSON bool) {
	cmd.shouldEmitJSON = emitJSON
}

// JSONOutputEnabled returns true if JSON output is enabled.
func (cmd *JSONOutputCmd) JSONOutputEnabled() bool {
	return cmd.shouldEmitJSON
}

// OutputJSON writes the supplied value to out as indented JSON.
func (cmd *JSONOutputCmd) OutputJSON(out io.Writer, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, []byte("\n")...))
	return err
}
