// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// hexfrommfm prints the results file of the Magnetic Field Mapper as a
// space-separated hex string, ready to be pasted into the message field of
// the device data view while the MT is in Config mode.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iomz/mfmhex"
	"github.com/iomz/mfmhex/binutil"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// Current Version
	version = "0.1.0"
)

const usage = "Usage: hexfrommfm <binary_file>"

// splitArgs separates the flags declared on app from the path arguments.
// Only the flags are handed to kingpin, so a path beginning with '-' or '@'
// reaches ReadResults as given. Everything after "--" is a path.
func splitArgs(app *kingpin.Application, args []string) (flags, paths []string) {
	long := map[string]bool{}
	short := map[string]bool{}
	for _, f := range app.Model().Flags {
		long["--"+f.Name] = true
		if f.IsBoolFlag() {
			long["--no-"+f.Name] = true
		}
		if f.Short != 0 {
			short["-"+string(f.Short)] = true
		}
	}

	for i, arg := range args {
		if arg == "--" {
			paths = append(paths, args[i+1:]...)
			break
		}
		name := arg
		if j := strings.IndexByte(arg, '='); j > 0 && strings.HasPrefix(arg, "--") {
			name = arg[:j]
		}
		if long[name] || short[arg] {
			flags = append(flags, arg)
		} else {
			paths = append(paths, arg)
		}
	}
	return flags, paths
}

func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("hexfrommfm", "Print an MFM results file as a space-separated hex string.")
	app.Version(version)
	app.UsageWriter(stdout)
	app.ErrorWriter(stdout)
	exitCode := -1
	app.Terminate(func(code int) {
		if exitCode < 0 {
			exitCode = code
		}
	})
	debug := app.Flag("debug", "Enable debug mode.").Short('v').Bool()
	app.Arg("binary_file", "The MFM results file.").String()

	flags, paths := splitArgs(app, args)
	_, err := app.Parse(flags)
	if exitCode >= 0 {
		// --help or --version
		return exitCode
	}
	if err != nil || len(paths) != 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	logger := mfmhex.NewLogger(*debug, stderr)
	path := paths[0]
	data, err := mfmhex.ReadResults(path)
	if err != nil {
		logger.WithError(err).Debug("failed to read results file")
		fmt.Fprintln(stdout, err)
		return 1
	}
	logger.WithFields(mfmhex.NewSummary(path, data).Fields()).Debug("read results file")

	fmt.Fprintln(stdout, binutil.EncodeToSpacedHex(data))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
