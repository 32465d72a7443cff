package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/snesdump/pkg/dump"
	fx "github.com/robotalks/snesdump/pkg/framework"
	"github.com/robotalks/snesdump/pkg/serial"
)

func init() {
	dump.SetupFlags()
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] device-file\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	conf := dump.NewConfig()
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(conf, flag.Arg(0)); err != nil {
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(conf *dump.Config, device string) error {
	ctx, stop := fx.WithSignals(context.Background())
	defer stop()

	port, err := serial.Open(device)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	out, closeOut, err := conf.OpenOutput()
	if err != nil {
		port.Close()
		return fmt.Errorf("output: %w", err)
	}

	session := dump.NewSession(port, out, conf.NewReporter(os.Stderr))
	var size int64
	err = fx.RunWithContextCloser(ctx, port, func() (err error) {
		size, err = session.Run(ctx)
		return
	})
	var errs fx.AggregatedError
	if err = errs.Add(err, closeOut()).Aggregate(); err != nil {
		return err
	}
	glog.V(1).Infof("dumped %d bytes from %s", size, device)
	return nil
}
