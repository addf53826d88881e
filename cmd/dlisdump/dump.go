// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dlisparse/dlis"
)

func prettyPrint(v interface{}) string {
	var buf bytes.Buffer
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func tabwriterWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 40 {
		return 80
	}
	return w
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpFile(filePath)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if err == nil && !f.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})
	for _, file := range fileList {
		dumpFile(file)
	}
}

func dumpFile(filename string) {
	log := newLogger()
	log.Info("processing", "file", filename)

	f, err := dlis.Open(filename, dlis.WithLogger(log), dlis.WithEagerIndex(eager || wantAll))
	if err != nil {
		log.Error(err, "failed to open file", "file", filename)
		return
	}
	defer f.Close()

	fmt.Printf("\n\t------[ %s ]------\n%s\n", filename, strings.Repeat("-", tabwriterWidth()))

	if wantSUL || wantAll {
		sul := f.StorageLabel()
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 3, ' ', tabwriter.AlignRight)
		fmt.Print("\nSTORAGE UNIT LABEL\n******************\n")
		fmt.Fprintf(w, "Sequence:\t %d\n", sul.Sequence)
		fmt.Fprintf(w, "Version:\t %s\n", sul.Version)
		fmt.Fprintf(w, "Layout:\t %s\n", sul.Layout)
		fmt.Fprintf(w, "Max Record Length:\t %d\n", sul.MaxLen)
		fmt.Fprintf(w, "Storage Set Id:\t %q\n", sul.ID)
		w.Flush()
	}

	if wantChannels || wantAll {
		channels, err := f.Channels()
		dumpKind(log, "CHANNELS", channels, err)
	}
	if wantFrames || wantAll {
		frames, err := f.Frames()
		dumpKind(log, "FRAMES", frames, err)
	}
	if wantOrigins || wantAll {
		origins, err := f.Origins()
		dumpKind(log, "ORIGINS", origins, err)
	}
	if wantTools || wantAll {
		tools, err := f.Tools()
		dumpKind(log, "TOOLS", tools, err)
	}
	if wantParams || wantAll {
		params, err := f.Parameters()
		dumpKind(log, "PARAMETERS", params, err)
	}
	if wantCalib || wantAll {
		calib, err := f.Calibrations()
		dumpKind(log, "CALIBRATIONS", calib, err)
	}
	if wantAxes || wantAll {
		axes, err := f.Axes()
		dumpKind(log, "AXES", axes, err)
	}
	if wantZones || wantAll {
		zones, err := f.Zones()
		dumpKind(log, "ZONES", zones, err)
	}
	if wantEquip || wantAll {
		equip, err := f.Equipment()
		dumpKind(log, "EQUIPMENT", equip, err)
	}
	if wantUnknown || wantAll {
		unk, err := f.Unknowns()
		dumpKind(log, "UNKNOWN OBJECTS", unk, err)
	}
}

func dumpKind(log logr.Logger, title string, v interface{}, err error) {
	if err != nil {
		log.Error(err, "failed to dump kind", "kind", title)
		return
	}
	fmt.Printf("\n%s\n", title)
	for i := 0; i < len(title); i++ {
		fmt.Print("*")
	}
	fmt.Println()
	fmt.Println(prettyPrint(v))
}
