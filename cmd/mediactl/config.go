//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config defines the mediactl configuration file format. All fields
// are optional; command-line flags take precedence.
type config struct {
	// Device is the default media device node to query.
	Device string `yaml:"device,omitempty"`
	// Retries is the default retry budget for concurrent topology
	// changes.
	Retries *uint `yaml:"retries,omitempty"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config from %q", path)
	}

	cfg := &config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config from %q", path)
	}

	return cfg, nil
}
