// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/theckman/yacspin"

	"github.com/dlisparse/dlis"
)

func load(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg := yacspin.Config{
		Frequency:       100 * time.Millisecond,
		CharSet:         yacspin.CharSets[9],
		Suffix:          fmt.Sprintf(" loading %s", filename),
		SuffixAutoColon: true,
		StopCharacter:   "✓",
		StopColors:      []string{"fgGreen"},
	}
	spinner, err := yacspin.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	spinner.Start()

	log := newLogger()
	f, err := dlis.Load(filename, dlis.WithLogger(log))
	if err != nil {
		spinner.StopFailMessage(err.Error())
		spinner.StopFail()
		return
	}
	defer f.Close()

	tbl, err := f.Objects()
	if err != nil {
		spinner.StopFailMessage(err.Error())
		spinner.StopFail()
		return
	}

	spinner.StopMessage(fmt.Sprintf("indexed %d objects", tbl.Len()))
	spinner.Stop()

	for _, kind := range []string{
		dlis.SetFileHeader, dlis.SetOrigin, dlis.SetChannel, dlis.SetFrame,
		dlis.SetTool, dlis.SetParameter, dlis.SetCalibration, dlis.SetAxis,
		dlis.SetZone, dlis.SetEquipment,
	} {
		n := len(tbl.IterKind(kind))
		if n > 0 {
			fmt.Printf("  %-12s %d\n", kind, n)
		}
	}
}
