// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "size", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--size=N]... [--seed=N] [--workers=N] [--check]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if err := applyOptions(theConfiguration, options); nil != err {
		exitwithstatus.Message("%s: option error: %s", program, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	workloadLog := logger.New("workload")

	if !quiet {
		printHeader(os.Stdout)
	}

	for _, size := range theConfiguration.Sizes {
		w := workload{
			size:           size,
			seed:           theConfiguration.Seed,
			workers:        theConfiguration.Workers,
			removeFraction: theConfiguration.RemoveFraction,
			check:          theConfiguration.Check,
		}
		log.Infof("size: %d  workers: %d  seed: %d", size, w.workers, w.seed)

		r, err := w.run(workloadLog)
		if nil != err {
			log.Criticalf("size: %d  failed: %s", size, err)
			exitwithstatus.Message("%s: size: %d  failed: %s", program, size, err)
		}

		log.Infof("size: %d  inserted: %d  height: %d  bound: %.2f  insert: %s", size, r.inserted.Uint64(), r.slowest.height, r.bound, r.slowest.insert)
		printResult(os.Stdout, r)
	}
}

// replace configuration values with any given on the command line
func applyOptions(c *Configuration, options map[string][]string) error {
	if n := len(options["size"]); n > 0 {
		c.Sizes = make([]int, 0, n)
		for _, s := range options["size"] {
			size, err := strconv.Atoi(s)
			if nil != err {
				return err
			}
			c.Sizes = append(c.Sizes, size)
		}
	}

	if n := len(options["seed"]); n > 0 {
		seed, err := strconv.ParseInt(options["seed"][n-1], 10, 64)
		if nil != err {
			return err
		}
		c.Seed = seed
	}

	if n := len(options["workers"]); n > 0 {
		workers, err := strconv.Atoi(options["workers"][n-1])
		if nil != err {
			return err
		}
		c.Workers = workers
	}

	if len(options["check"]) > 0 {
		c.Check = true
	}

	return c.validate()
}

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "%10s %7s %12s %7s %7s %12s %12s %12s %12s\n",
		"size", "workers", "nodes", "height", "bound", "insert", "find", "remove", "drain")
}

// one line per workload, durations are for the slowest worker
func printResult(w io.Writer, r *result) {
	fmt.Fprintf(w, "%10d %7d %12d %7d %7.2f %12s %12s %12s %12s\n",
		r.size,
		r.workers,
		r.inserted.Uint64(),
		r.slowest.height,
		r.bound,
		r.slowest.insert,
		r.slowest.find,
		r.slowest.remove,
		r.slowest.drain,
	)
}
