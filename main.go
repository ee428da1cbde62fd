// Copyright 2011 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/AtheMathmo/rubefunge-93/befunge"
	"github.com/AtheMathmo/rubefunge-93/config"
	"github.com/AtheMathmo/rubefunge-93/console"
)

const (
	exitOK        = 0
	exitFatal     = 1
	exitUsage     = 2
	exitCancelled = 130
)

// verbosity is a counting flag: -v -v or -v=2.
type verbosity int

func (v *verbosity) String() string   { return strconv.Itoa(int(*v)) }
func (v *verbosity) IsBoolFlag() bool { return true }

func (v *verbosity) Set(s string) error {
	switch s {
	case "true":
		*v++
		return nil
	case "false":
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = verbosity(n)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rubefunge-93", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inline   = fs.String("e", "", "Run the given program text instead of a file")
		cfgPath  = fs.String("c", "", "Configuration file (default: nearest "+config.FileName+")")
		values   = fs.String("values", "", "Comma separated values for & and ~ instead of standard input")
		seed     = fs.Int64("seed", 0, "Seed for ? (0 seeds from the clock)")
		trace    = fs.Bool("trace", false, "Log every cycle at debug level (needs -v -v)")
		maxSteps = fs.Int64("max-steps", 0, "Stop after this many cycles (0 = no limit)")
		div      = fs.String("div", "", "Division by zero policy: zero or fatal")
		enc      = fs.String("encoding", "", "Text encoding of program and I/O: utf-8, latin1, cp437, windows-1252")
		verbose  verbosity
	)
	fs.Var(&verbose, "v", "Verbose logging (repeat for more)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rubefunge-93 [options] [file|-]\n\n")
		fmt.Fprintf(stderr, "Runs a Befunge-93 program from a file, standard input (-) or -e.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rubefunge-93 hello.bf\n")
		fmt.Fprintf(stderr, "  rubefunge-93 -e '&&+.@' -values 3,4\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if (*inline == "") == (fs.NArg() != 1) || fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	var (
		cfg *config.Config
		err error
	)
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		fmt.Fprintf(stderr, "rubefunge-93: %v\n", err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Interpreter.Seed = *seed
		case "trace":
			cfg.Interpreter.Trace = *trace
		case "max-steps":
			cfg.Interpreter.MaxSteps = *maxSteps
		case "div":
			cfg.Interpreter.DivisionByZero = *div
		case "encoding":
			cfg.IO.Encoding = *enc
		case "v":
			cfg.Log.Verbosity = int(verbose)
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "rubefunge-93: %v\n", err)
		return exitUsage
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)
	log := commonlog.GetLogger("rubefunge-93")
	if cfg.Path != "" {
		log.Debugf("using configuration %s", cfg.Path)
	}

	encoding, _ := cfg.Encoding()
	grid, err := loadProgram(*inline, fs.Arg(0), stdin, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "rubefunge-93: %v\n", err)
		return exitFatal
	}

	var in befunge.Input
	switch {
	case *values != "":
		vals, err := parseValues(*values)
		if err != nil {
			fmt.Fprintf(stderr, "rubefunge-93: -values: %v\n", err)
			return exitUsage
		}
		in = befunge.NewValueInput(vals...)
	case interactive(cfg.IO.Interactive, stdin):
		c := console.New(cfg.IO.Prompt)
		defer c.Close()
		in = c
	default:
		in = befunge.NewStreamInput(stdin, encoding)
	}

	vm := befunge.NewVM(grid, in, befunge.NewStreamOutput(stdout, encoding), cfg.Options())
	switch err := vm.Run(ctx); {
	case err == nil:
		log.Infof("halted after %d steps", vm.Steps())
		return exitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(stderr, "rubefunge-93: interrupted\n")
		return exitCancelled
	default:
		fmt.Fprintf(stderr, "rubefunge-93: %v\n", err)
		return exitFatal
	}
}

func loadProgram(inline, path string, stdin io.Reader, cfg *config.Config) (*befunge.Grid, error) {
	encoding, err := cfg.Encoding()
	if err != nil {
		return nil, err
	}
	var r io.Reader
	switch {
	case inline != "":
		r = strings.NewReader(inline)
	case path == "-":
		r = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return befunge.LoadEncoded(r, encoding, cfg.Limits())
}

func parseValues(s string) ([]befunge.Cell, error) {
	var vals []befunge.Cell
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, befunge.Cell(n))
	}
	return vals, nil
}

func interactive(mode string, stdin io.Reader) bool {
	switch mode {
	case config.InteractiveAlways:
		return true
	case config.InteractiveNever:
		return false
	}
	f, ok := stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
