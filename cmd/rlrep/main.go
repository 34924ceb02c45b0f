/*

A simple CLI app to parse and display information about a Rocket League
replay passed as a CLI argument.

*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rlreplay/rlrep/replayfile"
)

const (
	appName    = "rlrep"
	appVersion = "v0.1.0"
	appHome    = "https://github.com/rlreplay/rlrep"
)

const (
	ExitCodeMissingArguments         = 1
	ExitCodeFailedToParseReplay      = 2
	ExitCodeFailedToCreateOutputFile = 3
)

// Flag variables
var (
	version = flag.Bool("version", false, "print version info and exit")

	header   = flag.Bool("header", true, "print replay header")
	footer   = flag.Bool("footer", false, "print replay footer (object/name/class tables)")
	frames   = flag.Bool("frames", false, "print decoded frame sequence")
	computed = flag.Bool("computed", true, "print computed / derived data")
	outFile  = flag.String("outfile", "", "optional output file name")

	indent = flag.Bool("indent", true, "use indentation when formatting output")
)

func main() {
	flag.Parse()

	if *version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	repData, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Failed to read replay file: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	r, err := replayfile.DecodeConfig(repData, replayfile.Config{Frames: *frames || *computed})
	if err != nil {
		fmt.Printf("Failed to parse replay: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	var destination = os.Stdout
	if *outFile != "" {
		foutput, err := os.Create(*outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateOutputFile)
		}
		defer func() {
			if err := foutput.Close(); err != nil {
				panic(err)
			}
		}()
		destination = foutput
	}

	if *computed {
		r.Compute()
	} else {
		r.Computed = nil
	}

	if !*header {
		r.Header = nil
	}
	if !*footer {
		r.Footer = nil
	}
	if !*frames {
		r.Frames = nil
	}

	enc := json.NewEncoder(destination)
	if *indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(r); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}

func printVersion() {
	fmt.Println(appName, "version:", appVersion)
	fmt.Println("Platform:", runtime.GOOS, runtime.GOARCH)
	fmt.Println("Built with:", runtime.Version())
	fmt.Println("Home page:", appHome)
}

func printUsage() {
	fmt.Println("Usage:")
	name := os.Args[0]
	fmt.Printf("\t%s [FLAGS] replay.replay\n", name)
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
