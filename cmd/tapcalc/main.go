package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/tapcalc"
	"github.com/zephyrtronium/tapcalc/internal/configs"
	"github.com/zephyrtronium/tapcalc/internal/logs"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, confname string
		prec                   int
		alt, strict, verbose   bool
	)
	flag.StringVar(&inname, "in", "", "input file of key lines (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", defaultConfig.format, "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 uses float64)")
	flag.BoolVar(&alt, "alt", false, "display × and ÷ for multiplication and division")
	flag.BoolVar(&strict, "strict", false, "reject malformed sequences instead of reading them leniently")
	flag.BoolVar(&verbose, "v", false, "log every evaluation")
	flag.StringVar(&confname, "config", "", "config file taking precedence over the default locations")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}

	cfg, err := loadConfig(configs.NewLoader(configPaths(confname), schema))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	// Flags given on the command line win over config files.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.format = verb
		case "p":
			cfg.prec = uint(prec)
		case "alt":
			cfg.alt = alt
		case "strict":
			cfg.strict = strict
		case "v":
			if verbose {
				cfg.logLevel = "debug"
			}
		}
	})

	service := logs.IsSystemdService()
	var logw io.Writer = os.Stderr
	if service {
		logw = nil
	}
	logger := logs.New(logs.Options{
		Writer:  logw,
		Level:   logs.ParseLevel(cfg.logLevel),
		Journal: service,
	})

	var opts []tapcalc.EvalOption
	if cfg.strict {
		opts = append(opts, tapcalc.Strict())
	}
	r := &runner{
		kp:     tapcalc.NewKeypad(opts...),
		out:    os.Stdout,
		logger: logger,
		verb:   cfg.format,
		prec:   cfg.prec,
		alt:    cfg.alt,
	}

	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		if err := r.repl(os.Stdin, cfg.prompt); err != nil {
			logger.Error("read input", "error", err)
			os.Exit(1)
		}
		return
	}

	in, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		logger.Error("open input", "error", err)
		os.Exit(1)
	}
	if in != nil {
		if err := r.lines(in); err != nil {
			logger.Error("read input", "error", err)
			os.Exit(1)
		}
	}
	for _, arg := range flag.Args() {
		r.line(arg)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
