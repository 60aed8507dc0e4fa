/*
Command courseplanner loads a course catalog and answers questions about it.

Usage:

	courseplanner [options] [csv-path [course-id]]

	-h,--help                  Show this message
	-c,--config=<path>         YAML configuration file
	-f,--format=<format>       Output format, "console" (default) or "html"
	-v,--verbose               Report skipped catalog lines and trace at level Info

If no csv-path is given, the input path is taken from the configuration
(default: ABCU_Advising_Program_Input.txt). If a course-id is given, the
course is printed after every successful load.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/coursetree/config"
	"github.com/npillmayer/coursetree/display"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/timtadh/getopt"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}

const usage = `usage: courseplanner [options] [csv-path [course-id]]

    -h,--help                  Show this message
    -c,--config=<path>         YAML configuration file
    -f,--format=<format>       Output format, "console" (default) or "html"
    -v,--verbose               Report skipped catalog lines and trace at level Info
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, optargs, err := getopt.GetOpt(argv, "hc:f:v", []string{"help", "config=", "format=", "verbose"})
	if err != nil {
		fmt.Fprintf(stderr, "could not process args: %v\n", err)
		fmt.Fprint(stderr, usage)
		return 2
	}
	configPath, format, verbose := "", "", false
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			fmt.Fprint(stdout, usage)
			return 0
		case "-c", "--config":
			configPath = oa.Arg()
		case "-f", "--format":
			format = oa.Arg()
		case "-v", "--verbose":
			verbose = true
		}
	}
	if len(args) > 2 {
		fmt.Fprintf(stderr, "expected at most 2 arguments, got %d\n", len(args))
		fmt.Fprint(stderr, usage)
		return 2
	}
	conf, err := settingsFromConfig(configPath, format, verbose, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := setupTracing(conf); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer trace2go.Teardown()
	var console *display.Console
	if conf.GetBool(config.KeyDisplayColor) {
		console = display.NewConsole(nil, nil)
	} else {
		console = display.NewConsole(map[display.Part]*color.Color{}, nil)
	}
	settings := Settings{
		Path:     conf.GetString(config.KeyInputPath),
		Format:   conf.GetString(config.KeyDisplayFormat),
		Verbose:  verbose,
		CourseID: conf.GetString(config.KeyInputCourse),
	}
	if err := NewShell(stdin, stdout, console, settings).Run(); err != nil {
		tracer().Errorf("%v", err)
		return 1
	}
	return 0
}

// settingsFromConfig loads the configuration and lets command-line options
// and arguments override it.
func settingsFromConfig(path, format string, verbose bool, args []string) (*config.Conf, error) {
	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if format != "" {
		if format != "console" && format != "html" {
			return nil, fmt.Errorf("%w: unknown display format %q", config.ErrInvalid, format)
		}
		conf.Set(config.KeyDisplayFormat, format)
	}
	if verbose {
		conf.Set(config.KeyTraceLevel+".coursetree", "Info")
	}
	if len(args) > 0 {
		conf.Set(config.KeyInputPath, args[0])
	}
	if len(args) > 1 {
		conf.Set(config.KeyInputCourse, args[1])
	}
	return conf, nil
}

// setupTracing installs trace2go as the tracing backend, with trace levels
// and destination taken from conf.
func setupTracing(conf *config.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, config.KeyTraceLevel, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
