// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/dlisparse/dlis/internal/dlislog"
)

var (
	verbose      bool
	wantSUL      bool
	wantChannels bool
	wantFrames   bool
	wantOrigins  bool
	wantTools    bool
	wantParams   bool
	wantCalib    bool
	wantAxes     bool
	wantZones    bool
	wantEquip    bool
	wantUnknown  bool
	wantAll      bool
	eager        bool
)

func verbosity() int {
	if verbose {
		return dlislog.LevelTrace
	}
	return dlislog.LevelInfo
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "dlisdump",
		Short: "An RP66 V1 (DLIS) file parser",
		Long:  "A DLIS parser built for well-log interchange inspection.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps objects from a DLIS file",
		Long:  "Dumps the storage unit label and explicit-record objects of a DLIS file or a directory of them",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	var loadCmd = &cobra.Command{
		Use:   "load",
		Short: "Eagerly indexes a DLIS file and reports object counts",
		Args:  cobra.ExactArgs(1),
		Run:   load,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (trace-level) output")

	dumpCmd.Flags().BoolVarP(&wantSUL, "sul", "", false, "Dump the storage unit label")
	dumpCmd.Flags().BoolVarP(&wantChannels, "channels", "", false, "Dump CHANNEL objects")
	dumpCmd.Flags().BoolVarP(&wantFrames, "frames", "", false, "Dump FRAME objects")
	dumpCmd.Flags().BoolVarP(&wantOrigins, "origins", "", false, "Dump ORIGIN objects")
	dumpCmd.Flags().BoolVarP(&wantTools, "tools", "", false, "Dump TOOL objects")
	dumpCmd.Flags().BoolVarP(&wantParams, "parameters", "", false, "Dump PARAMETER objects")
	dumpCmd.Flags().BoolVarP(&wantCalib, "calibrations", "", false, "Dump CALIBRATION objects")
	dumpCmd.Flags().BoolVarP(&wantAxes, "axes", "", false, "Dump AXIS objects")
	dumpCmd.Flags().BoolVarP(&wantZones, "zones", "", false, "Dump ZONE objects")
	dumpCmd.Flags().BoolVarP(&wantEquip, "equipment", "", false, "Dump EQUIPMENT objects")
	dumpCmd.Flags().BoolVarP(&wantUnknown, "unknowns", "", false, "Dump objects of untyped set kinds")
	dumpCmd.Flags().BoolVarP(&wantAll, "all", "", false, "Dump everything")
	dumpCmd.Flags().BoolVarP(&eager, "eager", "", false, "Build the full object table before dumping")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(loadCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger() logr.Logger {
	sink := dlislog.NewSimpleLogSink(os.Stderr, verbosity(), true)
	return logr.New(sink)
}
