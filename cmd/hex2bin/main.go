// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// hex2bin turns the output of hexfrommfm back into bytes, so that a
// transcribed message can be compared with the original results file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iomz/mfmhex/binutil"
	"gopkg.in/alecthomas/kingpin.v2"
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("hex2bin", "Decode a space-separated hex string into bytes.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	exitCode := -1
	app.Terminate(func(code int) {
		if exitCode < 0 {
			exitCode = code
		}
	})
	outFile := app.Flag("out", "Write the bytes to this file instead of stdout.").Short('o').String()
	bits := app.Flag("bits", "Print the bytes as a binary string.").Short('b').Bool()
	inputs := app.Arg("hex", "The hex string, read from stdin when omitted.").Strings()

	_, err := app.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if len(*inputs) > 1 {
		fmt.Fprintf(stderr, "Error: expected at most one hex argument, got %d\n", len(*inputs))
		return 1
	}

	var s string
	if len(*inputs) == 1 {
		s = (*inputs)[0]
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		s = string(b)
	}

	if *bits {
		binString, err := binutil.ParseSpacedHexToBinString(s)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, binString)
		return 0
	}

	data, err := binutil.DecodeSpacedHex(s)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *outFile != "" {
		err = os.WriteFile(*outFile, data, 0644)
	} else {
		_, err = stdout.Write(data)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
