// Command sc530ai-ctl brings up SC530AI sensors attached to a USB serial
// bridge and publishes their state over MQTT.
//
//	sc530ai-ctl [-config file] detect|stream|off|status|serve
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cameracode-go/x/logx"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-config file] detect|stream|off|status|serve\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configFile := flag.String("config", "", "configuration file (default: config.yaml in /etc/sc530ai, ~/.sc530ai or .)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, flag.Arg(0), os.Stdout); err != nil {
		logx.Errorf("%s: %v", flag.Arg(0), err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(c LogConfig) {
	if lv, ok := logx.ParseLevel(c.Level); ok {
		logx.SetLevel(lv)
	}
	if c.File != "" {
		logx.SetOutput(logx.RotatingFile(c.File, c.MaxSizeMB, c.MaxBackups))
	}
}
