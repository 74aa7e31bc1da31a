package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jcorbin/gonaz/internal/logio"
	"github.com/jcorbin/gonaz/internal/number"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [-u] <file>\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(flag.CommandLine.Output(), " File needs to be the .naz file to execute.\n")
	flag.PrintDefaults()
}

func main() {
	ctx := context.Background()
	log := logio.NewLogger(os.Stderr)

	var (
		cfgPath  string
		cfg      config
		flagsCfg config
	)
	flag.Usage = usage
	flag.StringVar(&cfgPath, "config", "", "load settings from a TOML file")
	flag.BoolVar(&flagsCfg.Unbounded, "u", false, "enable unlimited numbers")
	flag.BoolVar(&flagsCfg.Trace, "trace", false, "enable trace logging")
	flag.StringVar(&flagsCfg.Timeout, "timeout", "", "specify a time limit")
	flag.StringVar(&flagsCfg.Snapshot, "snapshot", "", "write a .cbor or .yaml state snapshot here after a fatal error")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if cfgPath != "" {
		var err error
		if cfg, err = loadConfig(cfgPath); err != nil {
			log.Errorf("%v", err)
			os.Exit(log.ExitCode())
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u":
			cfg.Unbounded = flagsCfg.Unbounded
		case "trace":
			cfg.Trace = flagsCfg.Trace
		case "timeout":
			cfg.Timeout = flagsCfg.Timeout
		case "snapshot":
			cfg.Snapshot = flagsCfg.Snapshot
		}
	})

	timeout, err := cfg.timeout()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	var logfn func(mess string, args ...interface{})
	warnf := log.Leveledf("WARN")
	if cfg.Trace {
		commonlog.Configure(2, nil)
		logger := commonlog.GetLogger("naz")
		logfn = func(mess string, args ...interface{}) { logger.Debugf(mess, args...) }
		warnf = func(mess string, args ...interface{}) { logger.Warningf(mess, args...) }
	}

	prog, err := loadSource(flag.Arg(0), warnf)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	dom := number.BoundedDomain
	if cfg.Unbounded {
		dom = number.UnboundedDomain
	}
	vm := New(
		WithDomain(dom),
		WithProgram(prog),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
		WithLogf(logfn),
	)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		log.Errorf("%+v", err)
		lw := &logio.Writer{Logf: log.Leveledf("")}
		vmDumper{vm: vm, out: lw}.dump()
		lw.Close()
		if cfg.Snapshot != "" {
			log.ErrorIf(vm.snapshot(err).writeFile(cfg.Snapshot))
		}
	}
	vm.Close()
	os.Exit(log.ExitCode())
}
