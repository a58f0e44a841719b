//
// (C) Copyright 2025 The mediactl Authors.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package main

import (
	"os"
	"path"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/linuxmedia/mediactl/common/cmdutil"
	"github.com/linuxmedia/mediactl/lib/media/mcprov"
	"github.com/linuxmedia/mediactl/logging"
)

type cliOptions struct {
	Debug      bool   `short:"d" long:"debug" description:"Enable debug output"`
	JSON       bool   `short:"j" long:"json" description:"Enable JSON output"`
	ConfigPath string `long:"config-path" description:"Path to configuration file"`

	Topology mcprov.DumpTopologyCmd `command:"topology" alias:"topo" description:"Dump a media device's topology graph"`
	Info     mcprov.DeviceInfoCmd   `command:"info" description:"Show a media device's identification"`
	Scan     mcprov.ScanCmd         `command:"scan" description:"List media device nodes on this system"`
}

func parseOpts(args []string, opts *cliOptions, log *logging.LeveledLogger) error {
	p := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "mediactl"
	p.ShortDescription = "Query Media Controller device topology"
	p.Usage = "[OPTIONS] COMMAND"

	p.CommandHandler = func(cmd flags.Commander, cmdArgs []string) error {
		if cmd == nil {
			return nil
		}

		if opts.Debug {
			log.WithLogLevel(logging.LogLevelDebug)
		}

		if logCmd, ok := cmd.(cmdutil.LogSetter); ok {
			logCmd.SetLog(log)
		}

		if jsonCmd, ok := cmd.(cmdutil.JSONOutputter); ok {
			jsonCmd.EnableJSONOutput(opts.JSON)
		}

		if opts.ConfigPath != "" {
			cfg, err := loadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}

			if cfg.Device != "" {
				if devCmd, ok := cmd.(mcprov.DeviceSetter); ok {
					devCmd.SetDevice(cfg.Device)
				}
			}
			if cfg.Retries != nil {
				if retryCmd, ok := cmd.(mcprov.RetrySetter); ok {
					retryCmd.SetRetries(*cfg.Retries)
				}
			}
		}

		return cmd.Execute(cmdArgs)
	}

	_, err := p.ParseArgs(args)
	return err
}

func main() {
	log := logging.NewCommandLineLogger()

	var opts cliOptions
	if err := parseOpts(os.Args[1:], &opts, log); err != nil {
		if fe, ok := errors.Cause(err).(*flags.Error); ok && fe.Type == flags.ErrHelp {
			log.Info(fe.Error())
			os.Exit(0)
		}
		log.Errorf("%s: %s", path.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
