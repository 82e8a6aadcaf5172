// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultSeed           = 0
	defaultWorkers        = 1
	defaultRemoveFraction = 0.5

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultSizes = []int{1 << 20, 1 << 21, 1 << 22}

	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"workload":        "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for a benchmark run
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Sizes          []int                `gluamapper:"sizes" json:"sizes"`
	Seed           int64                `gluamapper:"seed" json:"seed"`
	Workers        int                  `gluamapper:"workers" json:"workers"`
	RemoveFraction float64              `gluamapper:"remove_fraction" json:"remove_fraction"`
	Check          bool                 `gluamapper:"check" json:"check"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults used when no configuration file is given
func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory:  defaultDataDirectory,
		Sizes:          append([]int{}, defaultSizes...),
		Seed:           defaultSeed,
		Workers:        defaultWorkers,
		RemoveFraction: defaultRemoveFraction,
		Check:          false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name means use the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	baseDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(fileName)

		// ParseConfigurationFile replaces the whole slice
		options.Sizes = nil
		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
		if 0 == len(options.Sizes) {
			options.Sizes = append([]int{}, defaultSizes...)
		}
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = filepath.Clean(baseDirectory)
	default:
		options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check the workload settings
func (c *Configuration) validate() error {
	for _, n := range c.Sizes {
		if n <= 0 {
			return fault.ErrInvalidSize
		}
	}
	if c.Workers <= 0 {
		return fault.ErrInvalidWorkers
	}
	if c.RemoveFraction < 0 || c.RemoveFraction > 1 {
		return fault.ErrInvalidFraction
	}
	return nil
}
